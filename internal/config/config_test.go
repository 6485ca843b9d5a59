package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "jayade_clinic", cfg.MongoDatabase)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, []byte("secret"), cfg.JWTSecret)
}

func TestLoadExplicitValues(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MONGO_DATABASE", "clinic_test")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	require.Equal(t, "clinic_test", cfg.MongoDatabase)
	require.Equal(t, "9090", cfg.Port)
}
