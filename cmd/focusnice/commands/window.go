package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/focusnice/focusnice/internal/priority"
	"github.com/focusnice/focusnice/internal/x11"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the currently focused window",
	Long: `Inspect the currently focused X11 window: its id, the owning process
reported by _NET_WM_PID, and that process's current niceness. Useful for
checking what "focusnice run" would act on.`,
	Example: `  focusnice window

  # JSON output
  focusnice window --format json`,
	RunE: runWindow,
}

var windowFormat string

func init() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.Flags().StringVarP(&windowFormat, "format", "f", "text", "output format (text or json)")
}

type windowReport struct {
	Window uint32 `json:"window"`
	PID    int    `json:"pid"`
	Nice   *int   `json:"niceness,omitempty"`
}

func runWindow(cmd *cobra.Command, args []string) error {
	client, err := x11.Dial()
	if err != nil {
		return fmt.Errorf("failed to open display: %w", err)
	}
	defer client.Close()

	win, ok := client.ActiveWindow()
	if !ok {
		fmt.Println("No window is currently focused")
		return nil
	}

	report := windowReport{Window: win}
	report.PID = client.WindowPID(win)
	if report.PID != 0 {
		if nice, err := (priority.UnixController{}).Get(report.PID); err == nil {
			report.Nice = &nice
		}
	}

	if windowFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	fmt.Printf("Window:   0x%x\n", report.Window)
	if report.PID == 0 {
		fmt.Println("PID:      unknown (window does not advertise _NET_WM_PID)")
		return nil
	}
	fmt.Printf("PID:      %d\n", report.PID)
	if report.Nice != nil {
		fmt.Printf("Niceness: %d\n", *report.Nice)
	}
	return nil
}
