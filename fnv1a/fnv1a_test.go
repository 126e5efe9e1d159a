package fnv1a

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
	}{
		{"ascii", []byte("test"), 18007334074686647077},
		{"multi line", []byte("my\nmulti\nline\nstring"), 7644173466961780319},
		{"embedded nul", []byte("null\x00terminated"), 5570858491698162917},
		{"random bytes", []byte("\x26\x17\x2b\xbc\x97\xe7\x1f\x89\xcb\x79\x8a\xa4\xa5\xd8\xd7\xae"), 10447893955602105661},
		{"utf-8", []byte("你好"), 4406249425519110819},
		{"single byte", []byte("a"), 12638187200555641996},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Sum64(tt.data))
		})
	}
}

func TestSum64_MatchesStdlib(t *testing.T) {
	inputs := [][]byte{
		[]byte("a"),
		[]byte("hello, world"),
		{0x00},
		{0xff, 0x80, 0x7f},
	}
	for _, in := range inputs {
		h := fnv.New64a()
		_, _ = h.Write(in)
		require.Equal(t, h.Sum64(), Sum64(in), "input %x", in)
	}
}

func TestSum64_Pure(t *testing.T) {
	data := []byte("repeatable")
	first := Sum64(data)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, Sum64(data))
	}
	require.Equal(t, []byte("repeatable"), data, "input must not be modified")
}

func TestSum64_EmptyPanics(t *testing.T) {
	require.PanicsWithError(t, "[validation:fatal] data must not be empty", func() {
		Sum64(nil)
	})
	require.Panics(t, func() { Sum64([]byte{}) })
}

func BenchmarkSum64(b *testing.B) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		Sum64(data)
	}
}
