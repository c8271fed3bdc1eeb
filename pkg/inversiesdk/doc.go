/*
Package inversiesdk is a typed Go client for the Inversie API and the home of
the request and response types the server writes.

# SDKClient vs Session

SDKClient covers the public endpoints and logging in:

	client := inversiesdk.NewSDKClient("http://localhost:8080")

	health, err := client.GetReadiness(ctx)

	session, err := client.Login(ctx, "jan@test.nl", "1234")

A Session carries the bearer token returned by login and exposes the
authenticated endpoints:

	potjes, err := session.ListPotjes(ctx)

	decision, err := session.CreateDecision(ctx, inversiesdk.CreateDecisionRequest{
		Title:   "Winterjas",
		Amount:  inversiesdk.Amount("49.95"),
		PotjeID: potjes[0].ID,
	})

Guardian (BEWINDVOERDER) sessions use the same type:

	clients, err := guardian.ListClients(ctx)
	decision, err = guardian.ApproveDecision(ctx, decision.ID, "Goed bezig!")

# Errors

Every non-2xx response is returned as *APIError carrying the HTTP status, the
machine readable code and the message:

	var apiErr *inversiesdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		// already decided
	}

# Amounts

Money is shopspring/decimal.Decimal and is encoded as a bare JSON number so
no precision is lost on either side.
*/
package inversiesdk
