package ecogrow

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogochaves123/app-ecogrow/internal/config"
	"github.com/diogochaves123/app-ecogrow/internal/service"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage community posts",
}

var (
	postTitle   string
	postContent string
	postPlant   string
)

var postAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a community post",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.EnsureProfile(sqldb)
			if err != nil {
				return err
			}
			in := service.CreatePostInput{
				UserID:  profile.ID,
				Title:   postTitle,
				Content: postContent,
			}
			if postPlant != "" {
				plant, err := service.FindPlant(sqldb, postPlant)
				if err != nil {
					return err
				}
				in.PlantID = plant.ID
			}
			post, err := service.CreatePost(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Posted %s (%s)\n", post.Title, post.ID)
			return nil
		})
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			likes, err := service.LikePost(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Post has %d like(s)\n", likes)

			post, err := service.GetPost(sqldb, args[0])
			if err != nil {
				return err
			}
			return withConfig(sqldb, func(cfg config.Config) error {
				unlocks, err := service.CheckAndUnlock(sqldb, post.UserID, time.Now(), cfg.Reward.MaxAttempts)
				if err != nil {
					return err
				}
				printUnlocks(cmd, unlocks)
				return nil
			})
		})
	},
}

var postListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.EnsureProfile(sqldb)
			if err != nil {
				return err
			}
			posts, err := service.ListPosts(sqldb, profile.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tLIKES\tTITLE\tID")
			for _, p := range posts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n", formatDay(p.CreatedAt), p.Likes, p.Title, p.ID)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.AddCommand(postAddCmd, postLikeCmd, postListCmd)

	postAddCmd.Flags().StringVar(&postTitle, "title", "", "Post title")
	postAddCmd.Flags().StringVar(&postContent, "content", "", "Post content")
	postAddCmd.Flags().StringVar(&postPlant, "plant", "", "Related plant name or id")
	_ = postAddCmd.MarkFlagRequired("title")
}
