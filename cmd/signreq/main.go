// Command signreq sends one signing request to a running signer and prints
// the decision. It exits 0 on approve, 1 on reject and 2 on any failure.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-sign-keeper/internal/adapter"
	"github.com/MKhiriev/go-sign-keeper/internal/config"
	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/internal/utils"
	"github.com/MKhiriev/go-sign-keeper/models"
)

func main() {
	// registered before config parsing so one flag.Parse covers both
	method := flag.String("method", "sign_event", "Requested operation")
	params := flag.String("params", "", "Operation parameters as JSON")
	name := flag.String("name", "signreq", "Peer name shown in the prompt")
	pubkey := flag.String("pubkey", "", "Peer public key")
	relay := flag.String("relay", "", "Relay the peer connected through")
	traceID := flag.String("trace", "", "Trace id forwarded to the signer")

	log := logger.NewLogger("signreq")

	cfg, err := config.GetPeerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	req := models.SignRequest{
		Peer: models.PeerMetadata{Name: *name, PublicKey: *pubkey, Relay: *relay},
		Kind: models.RequestKind{Method: *method},
	}
	if *params != "" {
		if !json.Valid([]byte(*params)) {
			log.Fatal().Str("params", *params).Msg("params must be valid JSON")
		}
		req.Kind.Params = json.RawMessage(*params)
	}

	signer, err := adapter.NewHTTPSignerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create signer adapter")
	}

	ctx := context.Background()
	if *traceID != "" {
		ctx = utils.WithTraceID(ctx, *traceID)
	}

	resp, err := signer.RequestSignature(ctx, req)
	switch {
	case errors.Is(err, adapter.ErrRequestAbandoned):
		fmt.Println("abandoned")
		os.Exit(2)
	case errors.Is(err, adapter.ErrDecisionTimeout):
		fmt.Println("timeout")
		os.Exit(2)
	case err != nil:
		log.Error().Err(err).Msg("signing request failed")
		os.Exit(2)
	}

	fmt.Printf("%s %s\n", resp.ID, resp.Decision)
	if resp.Decision != models.DecisionApprove.String() {
		os.Exit(1)
	}
}
