package types

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestChatRequestWireFormat(t *testing.T) {
	req := ChatRequest{
		Model: "gpt-3.5-turbo",
		Messages: []ChatMessage{
			{Role: RoleUser, Content: "Hello"},
		},
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"model":"gpt-3.5-turbo","messages":[{"role":"user","content":"Hello"}]}`
	if string(data) != want {
		t.Errorf("Serialized request mismatch\n got: %s\nwant: %s", data, want)
	}
}

func TestChatRequestRoundTrip(t *testing.T) {
	original := ChatRequest{
		Model: "gpt-3.5-turbo",
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: "You are terse."},
			{Role: RoleUser, Content: "Hello"},
		},
		Temperature: 0.7,
		MaxTokens:   100,
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded ChatRequest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("Round trip mismatch\n got: %+v\nwant: %+v", decoded, original)
	}
}

func TestChatResponseDecode(t *testing.T) {
	body := `{
		"id": "chatcmpl-abc123",
		"object": "chat.completion",
		"created": 1677652288,
		"model": "gpt-3.5-turbo-0125",
		"choices": [
			{
				"index": 0,
				"message": {"role": "assistant", "content": "Hello! How can I help you today?"},
				"finish_reason": "stop"
			}
		],
		"usage": {"prompt_tokens": 8, "completion_tokens": 9, "total_tokens": 17}
	}`

	var resp ChatResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if resp.ID != "chatcmpl-abc123" {
		t.Errorf("Expected ID chatcmpl-abc123, got %s", resp.ID)
	}
	if resp.Object != "chat.completion" {
		t.Errorf("Expected object chat.completion, got %s", resp.Object)
	}
	if resp.Created != 1677652288 {
		t.Errorf("Expected created 1677652288, got %d", resp.Created)
	}
	if len(resp.Choices) != 1 {
		t.Fatalf("Expected 1 choice, got %d", len(resp.Choices))
	}
	choice := resp.Choices[0]
	if choice.Index != 0 || choice.FinishReason != "stop" {
		t.Errorf("Unexpected choice metadata: %+v", choice)
	}
	if choice.Message.Role != RoleAssistant {
		t.Errorf("Expected assistant role, got %s", choice.Message.Role)
	}
	if resp.Usage.TotalTokens != 17 {
		t.Errorf("Expected 17 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestErrorResponseDecode(t *testing.T) {
	body := `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`

	var envelope ErrorResponse
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if envelope.Error.Message != "Incorrect API key provided" {
		t.Errorf("Unexpected message: %s", envelope.Error.Message)
	}
	if envelope.Error.Code != "invalid_api_key" {
		t.Errorf("Unexpected code: %s", envelope.Error.Code)
	}
}
