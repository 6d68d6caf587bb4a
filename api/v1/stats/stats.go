// Package stats computes aggregate statistics over a blog collection.
// All functions are pure and scan left to right; tie-breaks are first-wins,
// meaning a later candidate must strictly exceed the current maximum to
// displace it.
package stats

import "github.com/sofivanhanen/bloglist/api/v1/models"

// AuthorBlogs is the most-prolific-author result
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is the most-liked-author result
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums likes over all blogs. Empty input sums to 0.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for empty
// input. On a tie the first blog in input order wins.
func FavoriteBlog(blogs []models.Blog) *models.Blog {
	if len(blogs) == 0 {
		return nil
	}

	favorite := 0
	for i := 1; i < len(blogs); i++ {
		if blogs[i].Likes > blogs[favorite].Likes {
			favorite = i
		}
	}
	return &blogs[favorite]
}

// MostBlogs returns the author with the most blogs, or nil for empty
// input. The maximum is seeded with the first blog's author at count 1,
// so an author that only ties the current maximum never displaces it.
func MostBlogs(blogs []models.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}

	counts := make(map[string]int)
	max := blogs[0].Author
	maxCount := 1
	for _, blog := range blogs {
		counts[blog.Author]++
		if counts[blog.Author] > maxCount {
			max = blog.Author
			maxCount = counts[blog.Author]
		}
	}

	return &AuthorBlogs{Author: max, Blogs: maxCount}
}

// MostLikes returns the author whose blogs sum to the most likes, or nil
// for empty input. The running maximum starts at the empty author with 0
// likes, so an input where no author accumulates a positive total reports
// that placeholder rather than any real author.
func MostLikes(blogs []models.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	totals := make(map[string]int)
	max := ""
	maxLikes := 0
	for _, blog := range blogs {
		totals[blog.Author] += blog.Likes
		if totals[blog.Author] > maxLikes {
			max = blog.Author
			maxLikes = totals[blog.Author]
		}
	}

	return &AuthorLikes{Author: max, Likes: maxLikes}
}
