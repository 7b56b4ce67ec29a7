package auth

import "time"

// Config holds token and password hashing settings, loaded from the
// environment.
type Config struct {
	SigningKey string        `env:"JWT_SIGNING_KEY,required"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"30m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"168h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}
