package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/renttrack/internal/config"
)

func TestDSN(t *testing.T) {
	c := config.DB{User: "rt", Host: "db", Port: "3306", Name: "renttrack"}
	assert.Equal(t, "rt@tcp(db:3306)/renttrack?charset=utf8mb4&parseTime=true&loc=UTC", DSN(c))

	c.Pass = "s3cret"
	assert.Equal(t, "rt:s3cret@tcp(db:3306)/renttrack?charset=utf8mb4&parseTime=true&loc=UTC", DSN(c))
}
