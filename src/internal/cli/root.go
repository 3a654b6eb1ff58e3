// Package cli 提供 checkout 命令列介面（cobra）
package cli

import (
	"github.com/jackyeh168/ddd_checkout/src/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// NewRootCommand 建立根命令與所有子命令
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "checkout",
		Short:         "Checkout - customers, products and orders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default is ./.env)")

	// 所有需要資料庫的子命令共用同一個 app
	var current *app
	open := func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		cfg, err := config.Load(files...)
		if err != nil {
			return err
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		current = a
		return nil
	}
	closeApp := func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.Close()
			current = nil
		}
	}
	get := func() *app { return current }

	for _, sub := range []*cobra.Command{
		newMigrateCommand(get),
		newCustomerCommand(get),
		newProductCommand(get),
		newOrderCommand(get),
	} {
		withApp(sub, open, closeApp)
		root.AddCommand(sub)
	}
	return root
}

// withApp 為命令樹中可執行的命令掛上 app 的建立與釋放
func withApp(cmd *cobra.Command, open func(*cobra.Command, []string) error, closeApp func(*cobra.Command, []string)) {
	if cmd.RunE != nil {
		cmd.PreRunE = open
		run := cmd.RunE
		cmd.RunE = func(c *cobra.Command, args []string) error {
			defer closeApp(c, args)
			return run(c, args)
		}
	}
	for _, child := range cmd.Commands() {
		withApp(child, open, closeApp)
	}
}

// Execute 執行根命令
func Execute() error {
	return NewRootCommand().Execute()
}
