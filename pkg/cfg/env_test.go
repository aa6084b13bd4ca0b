package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Setenv("CONTENTD_TEST_VALUE", "  hello ")
	assert.Equal(t, "hello", String("CONTENTD_TEST_VALUE", "def"))

	t.Setenv("CONTENTD_TEST_VALUE", "   ")
	assert.Equal(t, "def", String("CONTENTD_TEST_VALUE", "def"), "blank falls back")
}

func TestIsDev(t *testing.T) {
	t.Setenv("APP_ENV", " DEV ")
	assert.True(t, IsDev(), "APP_ENV=DEV")

	t.Setenv("APP_ENV", "prod")
	assert.False(t, IsDev(), "APP_ENV=prod")

	t.Setenv("APP_ENV", "")
	assert.False(t, IsDev(), "empty APP_ENV")
	assert.Equal(t, "dev", Env(), "default env")
}
