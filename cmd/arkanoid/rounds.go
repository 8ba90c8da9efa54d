package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
)

var roundsCmd = &cobra.Command{
	Use:   "rounds",
	Short: "List the built-in rounds",
	Long:  `Shows every built-in round with its brick and enemy counts.`,
	Run:   runRounds,
}

func runRounds(cmd *cobra.Command, args []string) {
	fmt.Println("Built-in rounds:")
	fmt.Println()
	fmt.Printf("  %-3s  %-12s  %-7s  %-5s  %s\n", "No.", "Name", "Bricks", "Gold", "Enemies")
	fmt.Printf("  %-3s  %-12s  %-7s  %-5s  %s\n", "---", "----", "------", "----", "-------")

	for i := 0; i < arkanoid.RoundCount(); i++ {
		round := arkanoid.GetRound(i)

		bricks, gold := 0, 0
		for _, row := range round.Layout {
			for _, ch := range row {
				switch ch {
				case '.':
				case 'G':
					gold++
				default:
					bricks++
				}
			}
		}

		fmt.Printf("  %-3d  %-12s  %-7d  %-5d  %d\n",
			round.Number, round.Name, bricks, gold, round.EnemyCount)
	}

	fmt.Println()
	fmt.Println("Run 'arkanoid play --round <no>' to start from a specific round.")
}
