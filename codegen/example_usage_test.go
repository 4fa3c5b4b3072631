package codegen_test

import (
	"fmt"
	"log"

	"github.com/irgen-dev/irgen/codegen"
	"github.com/irgen-dev/irgen/codegen/cpp"
	_ "github.com/irgen-dev/irgen/codegen/golang"
	"github.com/irgen-dev/irgen/codegen/protobuf"
	"github.com/irgen-dev/irgen/schema"
)

func Example_usage() {
	// Build a sample schema
	s := schema.New("Fruit API.")
	color := s.Declare("Color", "_color", "A color.").
		Attr("r", schema.Int64, "").
		Attr("g", schema.Int64, "").
		Attr("b", schema.Int64, "")
	s.Declare("Apple", "_apple", "A scrumptious apple.").
		Attr("color", color, "")
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}

	// Method 1: Direct usage
	cppGen := cpp.NewGenerator("")
	header, err := cppGen.Generate(s)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("C++ declarations generated successfully")

	protoGen := protobuf.NewGenerator("fruit")
	proto, err := protoGen.Generate(s)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Protobuf definitions generated successfully")

	// Method 2: Using the default registry, which the generator packages
	// populate on import
	for _, lang := range []string{"cpp", "go", "proto"} {
		gen, err := codegen.DefaultRegistry.Get(lang, "fruit")
		if err != nil {
			log.Fatal(err)
		}

		code, err := gen.Generate(s)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Generated %s code (%s)\n", gen.Language(), gen.FileExtension())
		_ = code // Use the generated code
	}

	// Output:
	// C++ declarations generated successfully
	// Protobuf definitions generated successfully
	// Generated cpp code (.h)
	// Generated go code (.go)
	// Generated proto code (.proto)

	_ = header
	_ = proto
}
