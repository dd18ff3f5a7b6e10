package nsid_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/atref/pkg/nsid"
)

func subTestName(tName string, good bool, notes ...string) string {
	if tName == "" {
		tName = "empty"
	}
	if len(notes) > 0 {
		tName = strings.Join(notes, " ") + " " + tName
	}
	if good {
		tName = "(good) " + tName
	} else {
		tName = "(bad) " + tName
	}
	return tName
}

// seg returns a maximal-length-testing segment of n letters.
func seg(n int) string {
	return strings.Repeat("a", n)
}

// joinSegments composes an identifier from segments.
func joinSegments(segments ...string) string {
	return strings.Join(segments, ".")
}

func TestParse(t *testing.T) {
	testcases := []struct {
		input   string
		wantErr bool
	}{
		{input: "com.example.fooBar"},
		{input: "net.users.bob.ping"},
		{input: "a-0.b-1.c"},
		{input: "a.b.c"},
		{input: "cn.8.lex.stuff"},
		{input: "com.example.thing2"},
		{input: "", wantErr: true},
		{input: "com", wantErr: true},
		{input: "com.example", wantErr: true},
		{input: "com.exa🤯ple.thing", wantErr: true},
		{input: "8com.example.thing", wantErr: true},
		{input: "com-.example.thing", wantErr: true},
		{input: "com.example-.thing", wantErr: true},
		{input: "com..thing", wantErr: true},
		{input: ".com.example.thing", wantErr: true},
		{input: "com.example.thing.", wantErr: true},
		{input: "com.example.3thing", wantErr: true},
		{input: "com.example.foo-bar", wantErr: true},
		{input: "com.example.foo_bar", wantErr: true},
		{input: "com.example.foo#bar", wantErr: true},
		{input: "com example.thing", wantErr: true},
	}

	for _, tc := range testcases {
		testname := subTestName(tc.input, !tc.wantErr)
		t.Run(testname, func(t *testing.T) {
			got, err := nsid.Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, nsid.ErrBadNSID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, got.String())
		})
	}
}

func TestParse_LengthBoundaries(t *testing.T) {
	// 63+1+62+1+62+1+62 characters of authority, one less than the bound
	authority252 := joinSegments(seg(63), seg(62), seg(62), seg(62))
	require.Len(t, authority252, 252)
	// 63+1+63+1+62+1+62 characters of authority, exactly at the bound
	authority253 := joinSegments(seg(63), seg(63), seg(62), seg(62))
	require.Len(t, authority253, 253)

	t.Run("total length 317 accepted", func(t *testing.T) {
		input := authority252 + "." + seg(64)
		require.Len(t, input, nsid.MaxLength)
		got, err := nsid.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, got.String())
	})

	t.Run("total length 318 rejected", func(t *testing.T) {
		input := authority252 + "." + seg(65)
		require.Len(t, input, nsid.MaxLength+1)
		_, err := nsid.Parse(input)
		require.Error(t, err)
		assert.ErrorIs(t, err, nsid.ErrBadNSID)
	})

	t.Run("authority 252 accepted", func(t *testing.T) {
		_, err := nsid.Parse(authority252 + ".name")
		assert.NoError(t, err)
	})

	t.Run("authority 253 rejected", func(t *testing.T) {
		_, err := nsid.Parse(authority253 + ".name")
		require.Error(t, err)
		assert.ErrorIs(t, err, nsid.ErrBadNSID)
	})

	t.Run("domain segment 63 accepted", func(t *testing.T) {
		_, err := nsid.Parse(joinSegments("com", seg(63), "name"))
		assert.NoError(t, err)
	})

	t.Run("domain segment 64 rejected", func(t *testing.T) {
		_, err := nsid.Parse(joinSegments("com", seg(64), "name"))
		require.Error(t, err)
		assert.ErrorIs(t, err, nsid.ErrBadNSID)
	})
}

func TestParseBytes(t *testing.T) {
	got, err := nsid.ParseBytes([]byte("com.example.fooBar"))
	require.NoError(t, err)
	assert.Equal(t, "com.example.fooBar", got.String())

	_, err = nsid.ParseBytes([]byte{'a', '.', 'b', '.', 0xff})
	require.Error(t, err)
	assert.ErrorIs(t, err, nsid.ErrBadNSID)
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() {
		nsid.MustParse("com.example.fooBar")
	})
	assert.Panics(t, func() {
		nsid.MustParse("com.example")
	})
}

func TestNSID_Accessors(t *testing.T) {
	testcases := []struct {
		input     string
		authority string
		name      string
		segments  []string
	}{
		{
			input:     "com.example.fooBar",
			authority: "com.example",
			name:      "fooBar",
			segments:  []string{"com", "example", "fooBar"},
		},
		{
			input:     "net.users.bob.ping",
			authority: "net.users.bob",
			name:      "ping",
			segments:  []string{"net", "users", "bob", "ping"},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			id := nsid.MustParse(tc.input)
			assert.False(t, id.IsZero())
			assert.Equal(t, tc.authority, id.Authority())
			assert.Equal(t, tc.name, id.Name())
			assert.Equal(t, tc.segments, slices.Collect(id.Segments()))
		})
	}
}

func TestNSID_SegmentsBackward(t *testing.T) {
	for _, input := range []string{"a.b.c", "com.example.fooBar", "net.users.bob.ping"} {
		t.Run(input, func(t *testing.T) {
			id := nsid.MustParse(input)
			forward := slices.Collect(id.Segments())
			backward := slices.Collect(id.SegmentsBackward())
			slices.Reverse(backward)
			assert.Equal(t, forward, backward)
		})
	}
}

func TestNSID_SegmentsRestartable(t *testing.T) {
	id := nsid.MustParse("com.example.fooBar")

	t.Run("forward", func(t *testing.T) {
		want := []string{"com", "example", "fooBar"}
		seq := id.Segments()
		assert.Equal(t, want, slices.Collect(seq))
		// ranging the same sequence again restarts from the first segment
		assert.Equal(t, want, slices.Collect(seq))
	})

	t.Run("backward", func(t *testing.T) {
		want := []string{"fooBar", "example", "com"}
		seq := id.SegmentsBackward()
		assert.Equal(t, want, slices.Collect(seq))
		assert.Equal(t, want, slices.Collect(seq))
	})
}

func TestNSID_IsZero(t *testing.T) {
	var zero nsid.NSID
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
}

func TestSegmentPredicates(t *testing.T) {
	testcases := []struct {
		input  string
		tld    bool
		domain bool
		name   bool
	}{
		{input: "com", tld: true, domain: true, name: true},
		{input: "example", tld: true, domain: true, name: true},
		{input: "fooBar", tld: true, domain: true, name: true},
		{input: "a-0", tld: true, domain: true, name: false},
		{input: "8", tld: false, domain: true, name: false},
		{input: "8com", tld: false, domain: true, name: false},
		{input: "com-", tld: false, domain: false, name: false},
		{input: "-com", tld: false, domain: false, name: false},
		{input: ""},
		{input: "exa🤯ple"},
		{input: "foo_bar"},
	}

	for _, tc := range testcases {
		testname := subTestName(tc.input, tc.tld || tc.domain || tc.name)
		t.Run(testname, func(t *testing.T) {
			assert.Equal(t, tc.tld, nsid.IsValidTLD([]byte(tc.input)), "tld")
			assert.Equal(t, tc.domain, nsid.IsValidDomainSegment([]byte(tc.input)), "domain")
			assert.Equal(t, tc.name, nsid.IsValidName([]byte(tc.input)), "name")
		})
	}
}
