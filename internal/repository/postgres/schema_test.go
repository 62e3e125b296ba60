package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletionPoliciesCoverEveryForeignKey(t *testing.T) {
	schema := Schema()

	// Every declared relationship must appear in the DDL with its policy.
	for relation, policy := range DeletionPolicies {
		assert.Containsf(t, schema, "ON DELETE "+string(policy), "relation %s", relation)
	}

	// A post outlives its group; everything else cascades.
	require.Equal(t, SetNull, DeletionPolicies["posts.group_id"])
	require.Equal(t, Cascade, DeletionPolicies["posts.author_id"])
	require.Equal(t, Cascade, DeletionPolicies["comments.post_id"])
	require.Equal(t, Cascade, DeletionPolicies["comments.author_id"])
	require.Equal(t, Cascade, DeletionPolicies["follows.user_id"])
	require.Equal(t, Cascade, DeletionPolicies["follows.author_id"])

	assert.Equal(t, 1, strings.Count(schema, "ON DELETE SET NULL"))
}

func TestSchemaEnforcesFollowUniqueness(t *testing.T) {
	assert.Contains(t, Schema(), "UNIQUE(user_id, author_id)")
}

func TestFeedQueryOrdersNewestFirst(t *testing.T) {
	assert.Equal(t, " ORDER BY p.pub_date DESC, p.id DESC", feedOrder)
	// Author and group resolve in the same pass as the posts.
	assert.Contains(t, feedSelect, "JOIN users u ON p.author_id = u.id")
	assert.Contains(t, feedSelect, "LEFT JOIN groups g ON p.group_id = g.id")
}
