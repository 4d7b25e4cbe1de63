package logs

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpOutputs(t *testing.T) {
	type person struct {
		Name string
		Age  int
		note string
	}
	s, stderr := newTestService(t)

	m := map[string]int{"a": 1, "b": 2}
	sl := []string{"x", "y"}
	p := person{Name: "Ada", Age: 37, note: "hidden"}

	s.Dump("App", nil)
	s.Dump("App", m)
	s.Dump("App", sl)
	s.Dump("App", p)
	s.Dump("App", &p)

	str := stderr.String()
	assert.Contains(t, str, "Dump: <nil>")
	assert.Contains(t, str, "[a]: 1")
	assert.Contains(t, str, "[1]: y")
	assert.Contains(t, str, "Struct: person")
	assert.Contains(t, str, "Name: Ada")
	assert.Contains(t, str, "Age: 37")
	assert.NotContains(t, str, "hidden")
	for _, line := range stderr.Lines() {
		assert.Contains(t, line, "[  DEBUG  ] | [App (")
	}
}

func TestDumpSuppressedBelowDebug(t *testing.T) {
	s, stderr := newTestService(t)
	s.SetMinLevel(LevelInfo)
	s.Dump("App", map[string]int{"a": 1})
	assert.Empty(t, stderr.String())
}

func TestDumpCycleAndLimits(t *testing.T) {
	type node struct {
		Name string
		Next *node
	}
	s, stderr := newTestService(t)

	n := &node{Name: "loop"}
	n.Next = n
	s.Dump("App", n)

	big := make([]int, 15)
	s.Dump("App", big)

	str := stderr.String()
	assert.Contains(t, str, "Next: <circular reference>")
	assert.Contains(t, str, "... (5 more elements)")
	assert.Equal(t, 10, strings.Count(str, "]: 0"))
}

func TestConcurrentDump(t *testing.T) {
	s, _ := newTestService(t)

	type testStruct struct {
		Field1 string
		Field2 int
	}

	const goroutines = 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			data := testStruct{Field1: fmt.Sprintf("test-%d", id), Field2: id}
			for j := 0; j < 10; j++ {
				s.Dump("", data)
			}
		}(i)
	}
	wg.Wait()
}
