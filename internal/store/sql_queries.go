package store

const (
	createUser = `INSERT INTO users (id, login, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, login, password_hash, created_at;`

	findUserByLogin = `SELECT id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`
)
