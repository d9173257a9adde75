package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labctl/internal/domain"
	"labctl/internal/testutil"
	"labctl/internal/usecase"
)

func branch(name string, t time.Time) domain.Branch {
	return domain.Branch{Name: name, CommittedAt: t}
}

func TestCleanupBranches_Execute(t *testing.T) {
	base := time.Date(2024, 3, 7, 14, 0, 0, 0, time.UTC)

	t.Run("keeps newest branch per hour-bucket", func(t *testing.T) {
		vcs := &testutil.MockVersionControl{Branches: []domain.Branch{
			branch("run-1", base.Add(5*time.Minute)),
			branch("run-2", base.Add(40*time.Minute)),
			branch("run-3", base.Add(20*time.Minute)),
			branch("next-hour", base.Add(70*time.Minute)),
		}}

		uc := usecase.NewCleanupBranches(vcs)
		out, err := uc.Execute(context.Background(), usecase.CleanupBranchesInput{Remote: "origin"})
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"run-2", "next-hour"}, out.Kept)
		assert.ElementsMatch(t, []string{"run-1", "run-3"}, out.Deleted)
		assert.ElementsMatch(t, []string{"run-1", "run-3"}, vcs.Deleted)
	})

	t.Run("never deletes protected branches", func(t *testing.T) {
		vcs := &testutil.MockVersionControl{Branches: []domain.Branch{
			branch("HEAD", base),
			branch("main", base.Add(time.Minute)),
			branch("master", base.Add(2*time.Minute)),
			branch("feature", base.Add(3*time.Minute)),
		}}

		uc := usecase.NewCleanupBranches(vcs)
		out, err := uc.Execute(context.Background(), usecase.CleanupBranchesInput{Remote: "origin"})
		require.NoError(t, err)

		assert.Empty(t, out.Deleted)
		assert.Equal(t, []string{"feature"}, out.Kept)
		assert.Empty(t, vcs.Deleted)
	})

	t.Run("dry run lists without deleting", func(t *testing.T) {
		vcs := &testutil.MockVersionControl{Branches: []domain.Branch{
			branch("a", base),
			branch("b", base.Add(time.Minute)),
		}}

		uc := usecase.NewCleanupBranches(vcs)
		out, err := uc.Execute(context.Background(), usecase.CleanupBranchesInput{Remote: "origin", DryRun: true})
		require.NoError(t, err)

		assert.Equal(t, []string{"a"}, out.Deleted)
		assert.Empty(t, vcs.Deleted)
	})

	t.Run("identical timestamps keep the first listed branch", func(t *testing.T) {
		vcs := &testutil.MockVersionControl{Branches: []domain.Branch{
			branch("first", base),
			branch("second", base),
		}}

		uc := usecase.NewCleanupBranches(vcs)
		out, err := uc.Execute(context.Background(), usecase.CleanupBranchesInput{Remote: "origin"})
		require.NoError(t, err)

		assert.Equal(t, []string{"first"}, out.Kept)
		assert.Equal(t, []string{"second"}, out.Deleted)
	})

	t.Run("hour-buckets respect timezone offsets", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		vcs := &testutil.MockVersionControl{Branches: []domain.Branch{
			// 14:30 UTC and 23:40 JST (= 14:40 UTC) fall in different
			// local hours, so both survive.
			branch("utc", time.Date(2024, 3, 7, 14, 30, 0, 0, time.UTC)),
			branch("jst", time.Date(2024, 3, 7, 23, 40, 0, 0, jst)),
		}}

		uc := usecase.NewCleanupBranches(vcs)
		out, err := uc.Execute(context.Background(), usecase.CleanupBranchesInput{Remote: "origin"})
		require.NoError(t, err)
		assert.Empty(t, out.Deleted)
	})

	t.Run("list failure aborts", func(t *testing.T) {
		vcs := &testutil.MockVersionControl{ListErr: errors.New("exit status 128")}

		uc := usecase.NewCleanupBranches(vcs)
		_, err := uc.Execute(context.Background(), usecase.CleanupBranchesInput{Remote: "origin"})
		require.Error(t, err)
	})

	t.Run("delete failure aborts the batch", func(t *testing.T) {
		vcs := &testutil.MockVersionControl{
			Branches: []domain.Branch{
				branch("a", base),
				branch("b", base.Add(time.Minute)),
			},
			DeleteErr: errors.New("exit status 1"),
		}

		uc := usecase.NewCleanupBranches(vcs)
		_, err := uc.Execute(context.Background(), usecase.CleanupBranchesInput{Remote: "origin"})
		require.Error(t, err)
	})
}
