// scripts/gcal-auth/main.go
//
// Run this ONCE locally to authorize Google Calendar access and print the
// refresh token the backend needs as GOOGLE_REFRESH_TOKEN.
//
// Usage:
//   GOOGLE_CLIENT_ID=... GOOGLE_CLIENT_SECRET=... go run scripts/gcal-auth/main.go
//
// It prints a consent URL. Log in with the Google account that owns the
// booking calendar, paste the authorization code back, and copy the token.

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("google_redirect_uri", "http://localhost")

	clientID := v.GetString("google_client_id")
	clientSecret := v.GetString("google_client_secret")
	if clientID == "" || clientSecret == "" {
		log.Fatal("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  v.GetString("google_redirect_uri"),
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarScope},
	}

	// Offline access plus forced consent so Google always returns a refresh token.
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code (the `code` query parameter) and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}
	if tok.RefreshToken == "" {
		log.Fatal("Google did not return a refresh token. Revoke the app's access and run again.")
	}

	fmt.Println()
	fmt.Println("Set this in the backend environment:")
	fmt.Printf("  GOOGLE_REFRESH_TOKEN=%s\n", tok.RefreshToken)
}
