package docs

import (
	"encoding/json"
	"testing"
)

type operation struct {
	Security  []map[string][]string      `json:"security"`
	Responses map[string]json.RawMessage `json:"responses"`
}

type document struct {
	Paths               map[string]map[string]operation `json:"paths"`
	SecurityDefinitions map[string]json.RawMessage      `json:"securityDefinitions"`
}

func readDocument(t *testing.T) document {
	t.Helper()
	var doc document
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger document is not valid JSON: %v", err)
	}
	return doc
}

func TestSwaggerDocument(t *testing.T) {
	doc := readDocument(t)

	t.Run("security references are defined", func(t *testing.T) {
		for path, ops := range doc.Paths {
			for method, op := range ops {
				for _, req := range op.Security {
					for name := range req {
						if _, ok := doc.SecurityDefinitions[name]; !ok {
							t.Fatalf("%s %s references undefined security %q", method, path, name)
						}
					}
				}
			}
		}
	})

	t.Run("payment creation answers 200", func(t *testing.T) {
		op := doc.Paths["/payments/{quote_id}"]["post"]
		if _, ok := op.Responses["200"]; !ok {
			t.Fatalf("expected 200 response, got %v", op.Responses)
		}
	})
}
