package queries

const (
	userColumns = `id, name, email, password, type, phone, specialty, created_at, updated_at`

	GetAllUsers = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	GetUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	GetUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	CountUsersByEmailExcludingID = `SELECT COUNT(*) FROM users WHERE email = $1 AND id <> $2`

	InsertUser = `INSERT INTO users (name, email, password, type, phone, specialty)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	DeleteUserByID = `DELETE FROM users WHERE id = $1`

	GetProfessionalByID = `SELECT id FROM users WHERE id = $1 AND type = 'professional'`

	UsersTable = `users`
)
