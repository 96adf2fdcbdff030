package pathcases

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	ctx := context.WithValue(t.Context(), Log, logger)

	if _, err := Enumerate(ctx, DefaultGrammar()); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "82120 candidates") {
		t.Errorf("unexpected log output: %s", buf.String())
	}

	entry := logger.WithField("component", "test")

	if Logger(context.WithValue(t.Context(), Log, entry)) != entry {
		t.Error("Logger does not return the entry from the context")
	}

	if Logger(t.Context()).Logger != logrus.StandardLogger() {
		t.Error("Logger does not default to the standard logger")
	}
}
