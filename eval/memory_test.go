package eval_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gcalc/eval"
)

type MemorySuite struct {
	suite.Suite
	mem *eval.Memory
}

func (s *MemorySuite) SetupTest() {
	var err error
	s.mem, err = eval.NewMemory(map[string]float64{"a": 2})
	s.Require().NoError(err)
}

func (s *MemorySuite) TestStoreRecall() {
	s.Require().NoError(s.mem.Store("b", 5))
	v, ok := s.mem.Recall("b")
	s.True(ok)
	s.Equal(5.0, v)

	_, ok = s.mem.Recall("zzz")
	s.False(ok)
	s.Equal(2, s.mem.Len())
}

func (s *MemorySuite) TestRejectsBadNames() {
	for _, name := range []string{"", "2x", "a-b", "sin", "log", "abs"} {
		s.ErrorIs(s.mem.Store(name, 1), eval.ErrBadName, name)
	}
	s.NoError(s.mem.Store("_tmp1", 1))
}

func (s *MemorySuite) TestSnapshotIsIsolated() {
	snap := s.mem.Snapshot()
	snap["a"] = 100
	v, _ := s.mem.Recall("a")
	s.Equal(2.0, v)

	s.Require().NoError(s.mem.Store("a", 7))
	s.Equal(100.0, snap["a"])
}

func (s *MemorySuite) TestSnapshotFeedsEvaluation() {
	c := eval.MustCompile("a*x", "x")
	f := eval.Univariate(c, s.mem.Snapshot(), "x")
	s.Equal(6.0, f(3).Value)
}

func (s *MemorySuite) TestDeleteAndClear() {
	s.mem.Delete("a")
	s.mem.Delete("missing")
	s.Equal(0, s.mem.Len())

	s.Require().NoError(s.mem.Store("c", 1))
	s.mem.Clear()
	s.Empty(s.mem.Snapshot())

	var zero eval.Memory
	s.NoError(zero.Store("x", 1))
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(MemorySuite))
}
