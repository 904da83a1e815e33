package valueobjects

import "fmt"

type PhotoBucket string

const (
	BucketBefore PhotoBucket = "before"
	BucketDuring PhotoBucket = "during"
	BucketAfter  PhotoBucket = "after"
)

var validPhotoBuckets = map[PhotoBucket]bool{
	BucketBefore: true,
	BucketDuring: true,
	BucketAfter:  true,
}

func (pb PhotoBucket) IsValid() bool {
	return validPhotoBuckets[pb]
}

func NewPhotoBucket(s string) (PhotoBucket, error) {
	pb := PhotoBucket(s)
	if !pb.IsValid() {
		return "", fmt.Errorf("invalid photo bucket: %s", s)
	}
	return pb, nil
}

// PhotoSet groups order photo URLs by execution phase.
type PhotoSet struct {
	Before []string
	During []string
	After  []string
}

func NewPhotoSet() PhotoSet {
	return PhotoSet{
		Before: []string{},
		During: []string{},
		After:  []string{},
	}
}

func (ps PhotoSet) Bucket(bucket PhotoBucket) []string {
	switch bucket {
	case BucketBefore:
		return ps.Before
	case BucketDuring:
		return ps.During
	case BucketAfter:
		return ps.After
	}
	return nil
}

func (ps PhotoSet) WithPhoto(bucket PhotoBucket, url string) PhotoSet {
	switch bucket {
	case BucketBefore:
		ps.Before = append(ps.Before[:len(ps.Before):len(ps.Before)], url)
	case BucketDuring:
		ps.During = append(ps.During[:len(ps.During):len(ps.During)], url)
	case BucketAfter:
		ps.After = append(ps.After[:len(ps.After):len(ps.After)], url)
	}
	return ps
}

func (ps PhotoSet) Copy() PhotoSet {
	out := PhotoSet{
		Before: make([]string, len(ps.Before)),
		During: make([]string, len(ps.During)),
		After:  make([]string, len(ps.After)),
	}
	copy(out.Before, ps.Before)
	copy(out.During, ps.During)
	copy(out.After, ps.After)
	return out
}

func (ps PhotoSet) Total() int {
	return len(ps.Before) + len(ps.During) + len(ps.After)
}
