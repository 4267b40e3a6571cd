package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/frisfocus/internal/rules"
	jwtservice "github.com/limbo/frisfocus/pkg/jwt_service"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--env", filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRulesCommand(t *testing.T) {
	t.Setenv("RULES_FILE", "")
	out := run(t, "rules")
	assert.Contains(t, out, "EVENT TYPE")
	assert.Contains(t, out, "log_day")

	doc := run(t, "rules", "--toml")
	table, err := rules.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, rules.Default().All(), table.All())
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	uid := uuid.New()
	out := run(t, "token", "--user", uid.String())
	claims, err := jwtservice.New("cli-secret").ParseToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, uid.String(), claims.UserID)
}
