package nsid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/atref/pkg/nsid"
)

func TestParseReference(t *testing.T) {
	t.Run("relative fragment", func(t *testing.T) {
		got, err := nsid.ParseReference("#abc")
		require.NoError(t, err)
		assert.True(t, nsid.IsRelative(got))
		assert.False(t, nsid.IsFull(got))
		assert.Equal(t, "#abc", got.String())

		frag, ok := got.(nsid.Fragment)
		require.True(t, ok)
		assert.Equal(t, "abc", frag.Name())
	})

	t.Run("full without fragment", func(t *testing.T) {
		got, err := nsid.ParseReference("com.example.foo")
		require.NoError(t, err)
		assert.True(t, nsid.IsFull(got))
		assert.False(t, nsid.IsRelative(got))
		assert.Equal(t, "com.example.foo", got.String())

		full, ok := got.(nsid.FullReference)
		require.True(t, ok)
		assert.False(t, full.HasFragment())
		_, ok = full.Fragment()
		assert.False(t, ok)
		assert.Equal(t, "com.example.foo", full.NSID().String())
	})

	t.Run("full with fragment", func(t *testing.T) {
		got, err := nsid.ParseReference("com.example.foo#bar")
		require.NoError(t, err)
		assert.True(t, nsid.IsFull(got))
		assert.Equal(t, "com.example.foo#bar", got.String())
	})

	t.Run("bad relative", func(t *testing.T) {
		_, err := nsid.ParseReference("#foo-bar")
		require.Error(t, err)
		assert.ErrorIs(t, err, nsid.ErrBadFragment)
	})

	t.Run("bad full", func(t *testing.T) {
		_, err := nsid.ParseReference("com.example")
		require.Error(t, err)
		assert.ErrorIs(t, err, nsid.ErrBadNSID)
	})
}

func TestParseFullReference(t *testing.T) {
	testcases := []struct {
		input   string
		nsid    string
		name    string
		wantErr error
	}{
		{input: "com.example.foo", nsid: "com.example.foo"},
		{input: "com.example.foo#bar", nsid: "com.example.foo", name: "bar"},
		{input: "net.users.bob.ping#default", nsid: "net.users.bob.ping", name: "default"},
		{input: "com.example#bar", wantErr: nsid.ErrBadNSID},
		{input: "com.example.foo#", wantErr: nsid.ErrBadFragment},
		{input: "com.example.foo#ba-r", wantErr: nsid.ErrBadFragment},
		{input: "com.example.foo#bar#baz", wantErr: nsid.ErrBadFragment},
		{input: "#bar", wantErr: nsid.ErrBadNSID},
		{input: "", wantErr: nsid.ErrBadNSID},
	}

	for _, tc := range testcases {
		testname := subTestName(tc.input, tc.wantErr == nil)
		t.Run(testname, func(t *testing.T) {
			got, err := nsid.ParseFullReference(tc.input)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, got.String())
			assert.Equal(t, tc.nsid, got.NSID().String())

			if tc.name == "" {
				assert.False(t, got.HasFragment())
				_, ok := got.Fragment()
				assert.False(t, ok)
				_, ok = got.FragmentName()
				assert.False(t, ok)
				return
			}
			assert.True(t, got.HasFragment())
			name, ok := got.FragmentName()
			require.True(t, ok)
			assert.Equal(t, tc.name, name)
			frag, ok := got.Fragment()
			require.True(t, ok)
			assert.Equal(t, "#"+tc.name, frag.String())
		})
	}
}

func TestNSID_FullReference(t *testing.T) {
	id := nsid.MustParse("com.example.foo")
	full := id.FullReference()
	assert.Equal(t, "com.example.foo", full.String())
	assert.False(t, full.HasFragment())
	assert.Equal(t, id, full.NSID())
}

func TestNSID_WithFragment(t *testing.T) {
	id := nsid.MustParse("com.example.foo")
	frag := nsid.MustParseFragment("#bar")

	full := id.WithFragment(frag)
	assert.Equal(t, "com.example.foo#bar", full.String())
	assert.True(t, full.HasFragment())
	assert.Equal(t, id, full.NSID())
	got, ok := full.Fragment()
	require.True(t, ok)
	assert.Equal(t, frag, got)

	// composing then parsing the rendered text yields the same reference
	reparsed, err := nsid.ParseFullReference(full.String())
	require.NoError(t, err)
	assert.Equal(t, full, reparsed)
}

func TestFullReference_IsZero(t *testing.T) {
	var zero nsid.FullReference
	assert.True(t, zero.IsZero())
	assert.False(t, nsid.MustParse("a.b.c").FullReference().IsZero())
}
