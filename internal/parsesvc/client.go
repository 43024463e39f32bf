package parsesvc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	mdwlog "github.com/msto63/sable/foundation/core/log"
	"github.com/msto63/sable/foundation/lang/token"
	coreGrpc "github.com/msto63/sable/pkg/core/grpc"
	"github.com/msto63/sable/pkg/core/logging"
)

// Client calls a remote ParseService
type Client struct {
	conn  grpc.ClientConnInterface
	close func() error
}

// Dial connects to the parse service at target
func Dial(target string, logger *mdwlog.Logger, opts ...grpc.DialOption) (*Client, error) {
	conn, err := coreGrpc.Dial(coreGrpc.DefaultClientConfig(target), logging.Wrap(logger, "parse-client"), opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, close: conn.Close}, nil
}

// NewClient uses an existing connection; Close leaves it open
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn, close: func() error { return nil }}
}

// Parse sends tokens to the service. Diagnostics come back as
// codes.InvalidArgument status errors.
func (c *Client) Parse(ctx context.Context, source string, tokens []token.Token) (*Response, error) {
	in, err := EncodeRequest(Request{Source: source, Tokens: tokens})
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, ParseMethod, in, out); err != nil {
		return nil, err
	}

	return DecodeResponse(out)
}

// Close closes a connection opened by Dial
func (c *Client) Close() error {
	return c.close()
}
