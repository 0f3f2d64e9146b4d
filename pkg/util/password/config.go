package password

import "golang.org/x/crypto/bcrypt"

// Config holds bcrypt hashing parameters.
type Config struct {
	Cost      int
	MinLength int
}

func DefaultConfig() Config {
	return Config{
		Cost:      bcrypt.DefaultCost,
		MinLength: 8,
	}
}

// cost clamps the configured cost into bcrypt's accepted range.
func (c Config) cost() int {
	switch {
	case c.Cost < bcrypt.MinCost:
		return bcrypt.DefaultCost
	case c.Cost > bcrypt.MaxCost:
		return bcrypt.MaxCost
	}
	return c.Cost
}
