package parsesvc

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	mdwerror "github.com/msto63/sable/foundation/core/error"
	"github.com/msto63/sable/foundation/lang"
	"github.com/msto63/sable/foundation/lang/ast"
	"github.com/msto63/sable/foundation/lang/token"
)

const (
	// ServiceName is the fully qualified gRPC service name
	ServiceName = "sable.v1.ParseService"

	// ParseMethod is the full method name of Parse
	ParseMethod = "/" + ServiceName + "/Parse"
)

// ParseServer is the server API for ParseService
type ParseServer interface {
	Parse(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes ParseService. Messages are google.protobuf.Struct
// documents, so no generated code is needed.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ParseServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Parse",
			Handler:    parseHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sable/v1/parse.proto",
}

// RegisterParseServer registers srv with s
func RegisterParseServer(s grpc.ServiceRegistrar, srv ParseServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func parseHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParseServer).Parse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParseMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParseServer).Parse(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// EncodeRequest builds the wire form of a parse request
func EncodeRequest(req Request) (*structpb.Struct, error) {
	records := token.ToRecords(req.Tokens)
	list := make([]interface{}, len(records))
	for i, r := range records {
		rec := map[string]interface{}{
			"kind": r.Kind,
			"line": float64(r.Line),
			"col":  float64(r.Col),
		}
		if r.Text != "" {
			rec["text"] = r.Text
		}
		list[i] = rec
	}

	doc := map[string]interface{}{"tokens": list}
	if req.Source != "" {
		doc["source"] = req.Source
	}
	return structpb.NewStruct(doc)
}

// DecodeRequest reads a parse request from its wire form
func DecodeRequest(in *structpb.Struct) (Request, error) {
	fields := in.GetFields()

	tokensValue, ok := fields["tokens"]
	if !ok {
		return Request{}, invalidRequest("tokens field is required")
	}
	list := tokensValue.GetListValue()
	if list == nil {
		return Request{}, invalidRequest("tokens must be a list")
	}

	req := Request{Source: fields["source"].GetStringValue()}
	for i, v := range list.GetValues() {
		obj := v.GetStructValue()
		if obj == nil {
			return Request{}, invalidRequest(fmt.Sprintf("token %d is not an object", i))
		}
		f := obj.GetFields()

		rec := token.Record{
			Kind: f["kind"].GetStringValue(),
			Text: textValue(f["text"]),
			Line: int(f["line"].GetNumberValue()),
			Col:  int(f["col"].GetNumberValue()),
		}
		tok, err := token.FromRecord(rec)
		if err != nil {
			return Request{}, err
		}
		req.Tokens = append(req.Tokens, tok)
	}

	return req, nil
}

// textValue accepts numeric payloads written as JSON numbers
func textValue(v *structpb.Value) string {
	if v == nil {
		return ""
	}
	if _, ok := v.GetKind().(*structpb.Value_NumberValue); ok {
		return strconv.FormatFloat(v.GetNumberValue(), 'g', -1, 64)
	}
	return v.GetStringValue()
}

// EncodeResponse builds the wire form of a parse response
func EncodeResponse(resp *Response) (*structpb.Struct, error) {
	rendered := make([]interface{}, len(resp.Forms))
	for i, f := range resp.Forms {
		rendered[i] = f.String()
	}

	return structpb.NewStruct(map[string]interface{}{
		"source":   resp.Source,
		"tokens":   float64(resp.Tokens),
		"forms":    ast.EncodeAll(resp.Forms),
		"rendered": rendered,
		"cached":   resp.Cached,
	})
}

// DecodeResponse reads a parse response from its wire form
func DecodeResponse(out *structpb.Struct) (*Response, error) {
	doc := out.AsMap()

	docs, _ := doc["forms"].([]interface{})
	forms, err := ast.DecodeAll(docs)
	if err != nil {
		return nil, err
	}

	resp := &Response{Forms: forms}
	resp.Source, _ = doc["source"].(string)
	resp.Cached, _ = doc["cached"].(bool)
	if n, ok := doc["tokens"].(float64); ok {
		resp.Tokens = int(n)
	}
	return resp, nil
}

func invalidRequest(message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("parsesvc.DecodeRequest")
}

// toStatus maps service errors onto gRPC status codes. Parse diagnostics
// keep their "<line>:<col> | <message>" text.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	if pe, ok := lang.AsDiagnostic(err); ok {
		return status.Error(codes.InvalidArgument, pe.Error())
	}
	if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
