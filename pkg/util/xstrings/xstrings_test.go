package xstrings_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wuxler/atref/pkg/util/xstrings"
)

func TestSplitSeqBackward(t *testing.T) {
	testcases := []struct {
		input string
		sep   string
		want  []string
	}{
		{"com.example.fooBar", ".", []string{"fooBar", "example", "com"}},
		{"a.b.c", ".", []string{"c", "b", "a"}},
		{"single", ".", []string{"single"}},
		{"", ".", []string{""}},
		{"a..b", ".", []string{"b", "", "a"}},
		{".leading", ".", []string{"leading", ""}},
		{"trailing.", ".", []string{"", "trailing"}},
	}

	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			got := slices.Collect(xstrings.SplitSeqBackward(tc.input, tc.sep))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitSeqBackward_Restartable(t *testing.T) {
	want := []string{"c", "b", "a"}
	seq := xstrings.SplitSeqBackward("a.b.c", ".")
	assert.Equal(t, want, slices.Collect(seq))
	// ranging the same sequence again starts over from the end of s
	assert.Equal(t, want, slices.Collect(seq))
}

func TestSplitSeqBackward_RestartAfterEarlyStop(t *testing.T) {
	seq := xstrings.SplitSeqBackward("a.b.c", ".")
	for s := range seq {
		_ = s
		break
	}
	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(seq))
}

func TestSplitSeqBackward_EarlyStop(t *testing.T) {
	var got []string
	for s := range xstrings.SplitSeqBackward("a.b.c", ".") {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"c", "b"}, got)
}

func TestSplitSeqBackward_EmptySeparator(t *testing.T) {
	assert.Panics(t, func() {
		xstrings.SplitSeqBackward("abc", "")
	})
}
