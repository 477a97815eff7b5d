package api

import (
	"testing"

	"github.com/diogo/procchat/internal/errors"
)

func TestNewClient_EmptyBaseURL(t *testing.T) {
	_, err := NewClient("")
	if err != errors.ErrNoBaseURL {
		t.Errorf("NewClient(\"\") error = %v, want ErrNoBaseURL", err)
	}

	_, err = NewClient("   ")
	if err != errors.ErrNoBaseURL {
		t.Errorf("NewClient(whitespace) error = %v, want ErrNoBaseURL", err)
	}
}

func TestNewClient_NormalizesBaseURL(t *testing.T) {
	client, err := NewClient("http://localhost:8000/")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.BaseURL() != "http://localhost:8000" {
		t.Errorf("BaseURL() = %q, want trailing slash stripped", client.BaseURL())
	}
}

func TestNewClient_DefaultUserID(t *testing.T) {
	client, err := NewClient("http://localhost:8000")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.UserID() != "default" {
		t.Errorf("UserID() = %q, want default", client.UserID())
	}
}

func TestNewClient_WithUserID(t *testing.T) {
	client, err := NewClient("http://localhost:8000", WithUserID("alice"))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.UserID() != "alice" {
		t.Errorf("UserID() = %q, want alice", client.UserID())
	}

	// Empty user id keeps the default
	client, _ = NewClient("http://localhost:8000", WithUserID(""))
	if client.UserID() != "default" {
		t.Errorf("UserID() = %q, want default kept for empty option", client.UserID())
	}
}
