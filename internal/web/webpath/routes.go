package webpath

const (
	Home    = "/"
	Card    = "/cards/:filename"
	ApiCard = "/api/card"
)

func Path() map[string]string {
	return map[string]string{
		"Home":    Home,
		"ApiCard": ApiCard,
	}
}
