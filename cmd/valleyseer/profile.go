package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/storage"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved configurations",
	Long: `Profiles store a platform, seed and the optional hints under a name, so
they do not have to be repeated on every command. Use them with --profile,
or connect to the SSH server as the profile's name.

Examples:
  valleyseer profile save farm --platform pc --seed 123456789 --mine-level 80
  valleyseer profile list
  valleyseer profile show farm
  valleyseer profile delete farm`,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the given flags as a profile",
	Long: `Save a profile. Flags given on the command line are layered over the
profile's previous values, so a profile can be updated one field at a time.`,
	Args: cobra.ExactArgs(1),
	Run:  runProfileSave,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	Run:   runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a profile as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runProfileShow,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	Run:   runProfileDelete,
}

func init() {
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening database: %v", err)
	}
	return store
}

func runProfileSave(cmd *cobra.Command, args []string) {
	name := args[0]

	flags, err := flagFile(cmd)
	if err != nil {
		exitf("%v", err)
	}

	store := openStore()
	defer store.Close()

	var file config.File
	existing, err := store.Profile(name)
	if err != nil {
		exitf("%v", err)
	}
	if existing != nil {
		file = existing.File
	}
	file = file.Merge(flags)

	// A profile must be usable on its own.
	if _, err := file.Resolve(); err != nil {
		exitf("%v (a profile needs --platform and --seed)", err)
	}

	if err := store.SaveProfile(name, file); err != nil {
		exitf("%v", err)
	}
	fmt.Printf("Saved profile %q.\n", name)
}

func runProfileList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	profiles, err := store.Profiles()
	if err != nil {
		exitf("%v", err)
	}

	if len(profiles) == 0 {
		fmt.Println("No profiles saved yet.")
		fmt.Println()
		fmt.Println("Run 'valleyseer profile save <name> --platform <pc|switch> --seed <n>' to create one.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, p := range profiles {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-8s  %-12s  %s\n", maxNameLen, "Name", "Platform", "Seed", "Updated")
	fmt.Printf("  %-*s  %-8s  %-12s  %s\n", maxNameLen, "----", "--------", "----", "-------")

	for _, p := range profiles {
		platform, seed := "-", "-"
		if p.File.Platform != nil {
			platform = *p.File.Platform
		}
		if p.File.Seed != nil {
			seed = fmt.Sprint(*p.File.Seed)
		}
		fmt.Printf("  %-*s  %-8s  %-12s  %s\n", maxNameLen, p.Name, platform, seed, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runProfileShow(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	p, err := store.Profile(args[0])
	if err != nil {
		exitf("%v", err)
	}
	if p == nil {
		exitf("unknown profile %q", args[0])
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(p.File); err != nil {
		exitf("%v", err)
	}
	enc.Close()
}

func runProfileDelete(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	deleted, err := store.DeleteProfile(args[0])
	if err != nil {
		exitf("%v", err)
	}
	if !deleted {
		exitf("unknown profile %q", args[0])
	}
	fmt.Printf("Deleted profile %q.\n", args[0])
}
