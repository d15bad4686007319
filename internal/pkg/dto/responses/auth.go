package responses

type Login struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
