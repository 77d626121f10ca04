package explore_test

import (
	"os"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/logs"
)

func TestMain(m *testing.M) {
	// growth entries are debug level; keep example output clean
	logs.SetLevel(logs.InfoLevel)
	os.Exit(m.Run())
}
