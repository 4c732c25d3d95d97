package postgres

// PgErrorCodeUniqueViolation is SQLSTATE 23505, raised when a catalog row collides on name
const PgErrorCodeUniqueViolation = "23505"
