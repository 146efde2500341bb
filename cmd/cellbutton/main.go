package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/cellbutton/internal/logger"
)

func main() {
	ctx := logger.ContextWithCorrelationID(context.Background(), logger.NewCorrelationID())

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
