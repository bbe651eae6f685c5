// Package client contains the transport layer of the Policy Bridge client.
//
// # Overview
//
//  1. Client: the REST contract (Get/Post/Put/Delete against paths relative to
//     the API base URL).
//  2. HTTPClient: the JSON-over-HTTP implementation. Every request carries an
//     X-Request-ID and decodes numbers as json.Number so ids round-trip intact.
//  3. InitDatabase/RunMigrations: the local SQLite file holding the durable
//     session store, migrated with embedded goose migrations.
//
// # Error Handling
//
// Unsuccessful calls return *Failure, a tagged union over validation, message,
// transport and unknown outcomes built by ParseFailure or TransportFailure.
// errors.Is(err, ErrUnavailable) matches transport failures and
// errors.Is(err, ErrUnauthorized) matches 401/403 responses.
package client
