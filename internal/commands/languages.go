package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/irgen-dev/irgen/codegen"
	_ "github.com/irgen-dev/irgen/codegen/cpp"
	_ "github.com/irgen-dev/irgen/codegen/golang"
	_ "github.com/irgen-dev/irgen/codegen/protobuf"
)

// Languages prints the registered target languages
func (c *Controller) Languages(ctx context.Context) error {
	languages := codegen.DefaultRegistry.Languages()
	sort.Strings(languages)

	for _, lang := range languages {
		fmt.Println(lang)
	}
	return nil
}
