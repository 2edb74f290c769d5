package handlers

// fileDTO renders an attached file the way list views consume it.
type fileDTO struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}
