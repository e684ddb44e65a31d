package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const (
	flashCookie = "flash"

	LevelSuccess = "success"
	LevelError   = "error"
)

type FlashMessage struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

func success(text string) FlashMessage {
	return FlashMessage{Level: LevelSuccess, Text: text}
}

func failure(text string) FlashMessage {
	return FlashMessage{Level: LevelError, Text: text}
}

func readFlash(r *http.Request) []FlashMessage {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var messages []FlashMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil
	}

	return messages
}

// addFlash queues messages for the next JSON response, keeping any that the
// client has not seen yet.
func addFlash(w http.ResponseWriter, r *http.Request, messages ...FlashMessage) {
	pending := append(readFlash(r), messages...)

	data, err := json.Marshal(pending)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash returns the queued messages and clears the cookie.
func takeFlash(w http.ResponseWriter, r *http.Request) []FlashMessage {
	messages := readFlash(r)
	if len(messages) > 0 {
		http.SetCookie(w, &http.Cookie{
			Name:     flashCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return messages
}
