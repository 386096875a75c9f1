// Package postwave provides a Go client SDK for the Postwave
// transactional-email HTTP API.
//
// The SDK builds request payloads for sending, scheduling, rescheduling,
// canceling, batch-sending, and retrieving emails, and translates HTTP
// responses into typed results or typed errors.
//
// Basic usage:
//
//	client, err := postwave.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	email := postwave.NewEmail(
//	    []string{"recipient@example.com"},
//	    "sender@example.com",
//	    "Hello",
//	    postwave.WithHTML("<p>Hello from Postwave</p>"),
//	)
//
//	sent, err := client.SendEmail(ctx, email)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("ID:", sent.ID)
package postwave
