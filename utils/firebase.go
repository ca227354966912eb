// utils/firebase.go
package utils

import (
	"context"
	"log"

	"sanyukt/config"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// AuthClient verifies Firebase ID tokens presented at login.
var AuthClient *fbauth.Client

// FirebaseInit initializes the Firebase App and Auth client.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseServiceAccountPath)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	AuthClient = client
}
