// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// groundfmt prints captured Gemini responses annotated with their grounding
// citations. It reads the files named on the command line, or standard input
// if there are none, and writes one annotation per input, in order,
// separated by blank lines.
//
// Usage:
//
//	groundfmt [--format text|markdown] [--input json|proto|genai] [--verbose] [file ...]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	pb "cloud.google.com/go/ai/generativelanguage/apiv1beta/generativelanguagepb"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/gsans/gsans-google-ai-gemini-2-angular/grounding"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("groundfmt: ")
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	format  string
	input   string
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "groundfmt [file ...]",
		Short: "Annotate grounded Gemini responses with their citations",
		Long: `groundfmt reads Gemini responses that were generated with Google Search
grounding and prints their text with citation markers and a source list.

Input encodings:
  json   the REST API JSON of a response; "text" may be omitted
  proto  the REST API JSON of a Google AI v1beta GenerateContentResponse
  genai  the JSON encoding of a google.golang.org/genai GenerateContentResponse`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text or markdown")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "json", "input encoding: json, proto or genai")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log skipped supports to standard error")
	return cmd
}

type decodeFunc func([]byte) (*grounding.Response, error)

var decoders = map[string]decodeFunc{
	"json":  decodeJSON,
	"proto": decodeProto,
	"genai": decodeGenAI,
}

func decodeJSON(data []byte) (*grounding.Response, error) {
	var r grounding.Response
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func decodeProto(data []byte) (*grounding.Response, error) {
	var p pb.GenerateContentResponse
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return grounding.FromProto(&p), nil
}

func decodeGenAI(data []byte) (*grounding.Response, error) {
	var r genai.GenerateContentResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return grounding.FromGenAI(&r), nil
}

func (o *options) run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, files []string) error {
	format, err := grounding.ParseFormat(o.format)
	if err != nil {
		return err
	}
	decode, ok := decoders[o.input]
	if !ok {
		return fmt.Errorf("unknown input encoding %q", o.input)
	}
	var logger *slog.Logger
	if o.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	annotate := func(name string, data []byte) (string, error) {
		r, err := decode(data)
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		a := &grounding.Annotator{}
		if logger != nil {
			a.Logger = logger.With("input", name)
		}
		return a.Annotate(r, format), nil
	}

	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		out, err := annotate("stdin", data)
		if err != nil {
			return err
		}
		return writeOutputs(stdout, []string{out})
	}

	outs := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			outs[i], err = annotate(name, data)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return writeOutputs(stdout, outs)
}

// writeOutputs writes each output terminated by a newline, with a blank line
// between outputs.
func writeOutputs(w io.Writer, outs []string) error {
	var b strings.Builder
	for i, out := range outs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(out)
		if !strings.HasSuffix(out, "\n") {
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
