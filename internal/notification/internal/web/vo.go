package web

type Notification struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	URL     string `json:"url"`
	Read    bool   `json:"read"`
	Ctime   int64  `json:"ctime"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type MarkReadReq struct {
	ID int64 `json:"id"`
}
