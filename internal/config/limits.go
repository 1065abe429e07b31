package config

// MaxIDAttempts is how many fresh ids are tried before giving up on a collision.
const MaxIDAttempts = 5
