package meta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		flags []string
		props map[string]string
		len   int
	}{
		{
			name: "empty",
			text: "   ",
			len:  0,
		},
		{
			name:  "flags and properties",
			text:  " fields , default:3 ,name:pos",
			flags: []string{FlagFields, PropDefault, PropName},
			props: map[string]string{PropDefault: "3", PropName: "pos"},
			len:   3,
		},
		{
			name:  "empty tokens skipped",
			text:  ",,enable,,",
			flags: []string{FlagEnable},
			len:   1,
		},
		{
			name:  "quoted value keeps commas",
			text:  "default:'a,b',disable",
			flags: []string{PropDefault, FlagDisable},
			props: map[string]string{PropDefault: "a,b"},
			len:   2,
		},
		{
			name:  "double quoted value",
			text:  `default:"x:y"`,
			props: map[string]string{PropDefault: "x:y"},
			len:   1,
		},
		{
			name:  "unbalanced quote degrades to literal split",
			text:  "default:'a,b",
			props: map[string]string{PropDefault: "'a", "b": ""},
			len:   2,
		},
		{
			name:  "last writer wins",
			text:  "default:1,default:2",
			props: map[string]string{PropDefault: "2"},
			len:   1,
		},
		{
			name:  "unknown keys preserved",
			text:  "custom:value,whatever",
			flags: []string{"custom", "whatever"},
			props: map[string]string{"custom": "value"},
			len:   2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Parse(tt.text)
			require.Equal(t, tt.len, m.Len())
			for _, f := range tt.flags {
				require.Truef(t, m.GetFlag(f), "flag %q", f)
			}
			for k, v := range tt.props {
				require.Equal(t, v, m.GetProperty(k))
			}
		})
	}
}

func TestMetadataMissing(t *testing.T) {
	m := Parse("fields")
	require.False(t, m.GetFlag(FlagWhitelist))
	require.Equal(t, "", m.GetProperty(PropDefault))

	var zero Metadata
	require.False(t, zero.GetFlag(FlagAll))
	require.Equal(t, 0, zero.Len())
}

func TestMetadataString(t *testing.T) {
	m := Parse("whitelist, default:'1,2', name:x")
	require.Equal(t, []string{PropDefault, PropName, FlagWhitelist}, m.Keys())
	require.Equal(t, "default:'1,2',name:x,whitelist", m.String())

	again := Parse(m.String())
	require.Equal(t, m.Keys(), again.Keys())
	require.Equal(t, "1,2", again.GetProperty(PropDefault))
}
