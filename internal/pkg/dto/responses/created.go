package responses

type Created struct {
	ID int64 `json:"id"`
}
