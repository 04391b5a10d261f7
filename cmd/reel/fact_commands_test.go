package main

import (
	"testing"
)

func TestFactsGenerateAndList(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"facts", "generate", "-n", "3", "--category", "Science"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("facts generate: %v", err)
	}
	requireContains(t, out, "Generated 3 facts")
	requireContains(t, out, "Science")

	out, _, err = runCLI(t, []string{"facts", "list"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("facts list: %v", err)
	}
	requireContains(t, out, "Science")
}

func TestFactsAdd(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"facts", "add", "Octopuses have three hearts.", "--category", "Nature"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("facts add: %v", err)
	}
	requireContains(t, out, "Stored fact 1 (Nature)")

	out, _, err = runCLI(t, []string{"facts", "list", "--category", "Nature"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("facts list: %v", err)
	}
	requireContains(t, out, "Octopuses have three hearts.")
}

func TestFactsListEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"facts", "list"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("facts list: %v", err)
	}
	requireContains(t, out, "No facts stored")
}
