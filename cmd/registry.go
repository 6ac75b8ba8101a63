package cmd

import (
	"github.com/spf13/cobra"

	"storefront.GO/core/registry"
)

func registered() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Register adds an extension command. Call from init() in custom packages.
// Panics if the registry is locked or the name is already registered.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	list := registered()
	for _, r := range list {
		if r.Name() == c.Name() {
			panic("cmd/registry: duplicate command " + c.Name())
		}
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(list, c))
}

// Apply adds all registered commands to root and locks the registry. An
// extension may not replace a built-in command such as listing:browse.
func Apply() {
	for _, c := range registered() {
		if existing, _, err := rootCmd.Find([]string{c.Name()}); err == nil && existing != rootCmd {
			if existing == c {
				continue
			}
			panic("cmd/registry: " + c.Name() + " shadows a built-in command")
		}
		rootCmd.AddCommand(c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
