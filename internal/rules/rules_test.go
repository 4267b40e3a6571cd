package rules_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	errorvalues "github.com/limbo/frisfocus/internal/error_values"
	"github.com/limbo/frisfocus/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := rules.Default()
	logDay, ok := table.Lookup("log_day")
	require.True(t, ok)
	assert.Equal(t, 10, logDay.FpAmount)
	assert.Equal(t, rules.WindowDaily, logDay.Window)

	weekly, ok := table.Lookup("weekly_goal")
	require.True(t, ok)
	assert.Equal(t, rules.WindowWeekly, weekly.Window)

	_, ok = table.Lookup("unknown")
	assert.False(t, ok)

	all := table.All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].EventType, all[i].EventType)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		Desc  string
		Data  string
		Error error
	}{
		{
			Desc: "valid",
			Data: `
[[rule]]
event_type = "a"
fp_amount = 1
description = "A"
window = "none"
`,
		},
		{
			Desc: "duplicate event type",
			Data: `
[[rule]]
event_type = "a"
fp_amount = 1
description = "A"
window = "none"

[[rule]]
event_type = "a"
fp_amount = 2
description = "A again"
window = "daily"
`,
			Error: errorvalues.ErrInvalidRuleTable,
		},
		{
			Desc: "unknown window",
			Data: `
[[rule]]
event_type = "a"
fp_amount = 1
description = "A"
window = "monthly"
`,
			Error: errorvalues.ErrInvalidRuleTable,
		},
		{
			Desc: "missing description",
			Data: `
[[rule]]
event_type = "a"
fp_amount = 1
window = "none"
`,
			Error: errorvalues.ErrInvalidRuleTable,
		},
		{
			Desc:  "empty",
			Data:  ``,
			Error: errorvalues.ErrInvalidRuleTable,
		},
		{
			Desc:  "broken toml",
			Data:  `[[rule]`,
			Error: errorvalues.ErrInvalidRuleTable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			table, err := rules.Parse(tc.Data)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			_, ok := table.Lookup("a")
			assert.True(t, ok)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	err := os.WriteFile(path, []byte(`
[[rule]]
event_type = "custom"
fp_amount = 7
description = "Custom"
window = "weekly"
`), 0o600)
	require.NoError(t, err)

	table, err := rules.Load(path)
	require.NoError(t, err)
	r, ok := table.Lookup("custom")
	require.True(t, ok)
	assert.Equal(t, 7, r.FpAmount)

	_, err = rules.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	table, err = rules.Load("")
	require.NoError(t, err)
	_, ok = table.Lookup("log_day")
	assert.True(t, ok)
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rules.Encode(&buf, rules.Default().All()))
	table, err := rules.Parse(buf.String())
	require.NoError(t, err)
	assert.Equal(t, rules.Default().All(), table.All())
}
