// cmd/client is the CLI entry-point built with Cobra.
//
// Usage:
//
//	kvcli put --key <hex> --value '"hello"'  --base-url http://localhost:3000
//	kvcli get --key <hex>                    --base-url http://localhost:3000
//	kvcli run-id                             --base-url http://localhost:3000
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spalhad/kvstore/internal/client"
	"github.com/spalhad/kvstore/internal/duration"
	"github.com/spalhad/kvstore/internal/key"
)

var (
	baseURL    string
	timeoutRaw string
)

func main() {
	root := &cobra.Command{
		Use:   "kvcli",
		Short: "CLI client for a spalhad node",
	}

	root.PersistentFlags().StringVarP(&baseURL, "base-url", "s",
		"http://localhost:3000", "node base URL")
	root.PersistentFlags().StringVar(&timeoutRaw, "timeout", "10s",
		"HTTP request timeout (supports ns, us, mcs, ms, s, min)")

	root.AddCommand(putCmd(), getCmd(), runIDCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseTimeout() (time.Duration, error) {
	return duration.Parse(timeoutRaw)
}

func putCmd() *cobra.Command {
	var keyHex, value string

	cmd := &cobra.Command{
		Use:   "put",
		Short: "Store a JSON value under a key",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := key.FromHex(keyHex)
			if err != nil {
				return fmt.Errorf("invalid --key: %w", err)
			}
			if !json.Valid([]byte(value)) {
				return fmt.Errorf("invalid --value: not valid JSON")
			}
			timeout, err := parseTimeout()
			if err != nil {
				return fmt.Errorf("invalid --timeout: %w", err)
			}

			c := client.New(baseURL, timeout)
			isNew, err := c.Put(context.Background(), k, json.RawMessage(value))
			if err != nil {
				return err
			}
			prettyPrint(map[string]bool{"new": isNew})
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded 256-bit key")
	cmd.Flags().StringVar(&value, "value", "", "JSON value to store")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func getCmd() *cobra.Command {
	var keyHex string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieve the value stored under a key",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := key.FromHex(keyHex)
			if err != nil {
				return fmt.Errorf("invalid --key: %w", err)
			}
			timeout, err := parseTimeout()
			if err != nil {
				return fmt.Errorf("invalid --timeout: %w", err)
			}

			c := client.New(baseURL, timeout)
			value, found, err := c.Get(context.Background(), k)
			if err != nil {
				return err
			}
			if !found {
				fmt.Println("not found")
				return nil
			}
			prettyPrint(value)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded 256-bit key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func runIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run-id",
		Short: "Print the target node's current run id",
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, err := parseTimeout()
			if err != nil {
				return fmt.Errorf("invalid --timeout: %w", err)
			}

			c := client.New(baseURL, timeout)
			runID, err := c.RunID(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(runID.String())
			return nil
		},
	}
}

func prettyPrint(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(data))
}
