package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ContractFixture is a minimal contract on disk.
type ContractFixture struct {
	Dir      string
	Contract string
	State    string
	Request  string
	Params   string
	Schema   string
	Logic    string
}

// CreateContractFixture writes a contract, state, request, params, a .cto
// model and a .ergo logic file into a fresh temp directory.
func CreateContractFixture(t *testing.T) ContractFixture {
	t.Helper()

	dir := t.TempDir()
	f := ContractFixture{
		Dir:      dir,
		Contract: filepath.Join(dir, "contract.json"),
		State:    filepath.Join(dir, "state.json"),
		Request:  filepath.Join(dir, "request.json"),
		Params:   filepath.Join(dir, "params.json"),
		Schema:   filepath.Join(dir, "model.cto"),
		Logic:    filepath.Join(dir, "logic.ergo"),
	}

	WriteFile(t, f.Contract, `{"$class":"org.accordproject.helloworld.HelloWorldClause","name":"Fred Blogs"}`)
	WriteFile(t, f.State, `{"$class":"org.accordproject.runtime.State"}`)
	WriteFile(t, f.Request, `{"$class":"org.accordproject.helloworld.MyRequest","input":"Accord Project"}`)
	WriteFile(t, f.Params, `{"request":{"$class":"org.accordproject.helloworld.MyRequest","input":"Accord Project"}}`)
	WriteFile(t, f.Schema, "namespace org.accordproject.helloworld\n\nasset HelloWorldClause identified by clauseId {\n  o String clauseId\n  o String name\n}\n")
	WriteFile(t, f.Logic, "namespace org.accordproject.helloworld\n\ncontract HelloWorld over HelloWorldClause {\n  clause greet(request : MyRequest) : MyResponse {\n    return MyResponse{ output: \"Hello \" ++ contract.name ++ \" \" ++ request.input }\n  }\n}\n")

	return f
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// ReadFile returns the contents of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
