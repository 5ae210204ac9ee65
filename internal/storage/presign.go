package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// windowStart quantizes now to the start of its signing window. Windows are
// aligned on the Unix epoch so every process computes the same boundaries.
func windowStart(now time.Time, width time.Duration) time.Time {
	secs := int64(width / time.Second)
	if secs <= 0 {
		return now.UTC()
	}
	unix := now.Unix()
	return time.Unix(unix-unix%secs, 0).UTC()
}

// presigner signs S3 GET requests in query form (SigV4) at an explicit
// issuance instant. The minio client always signs at wall-clock now, which
// makes every URL unique and defeats downstream edge caching; signing at the
// window start keeps URLs byte-identical for the whole window.
type presigner struct {
	accessKey string
	secretKey string
	region    string
}

const signAlgorithm = "AWS4-HMAC-SHA256"

// presignGet returns a presigned GET URL for https://host/path, signed as if
// issued at issuedAt and valid for expiry from that instant. query carries
// extra request parameters (response header overrides) that are included in
// the signature.
func (p presigner) presignGet(host, path string, issuedAt time.Time, expiry time.Duration, query url.Values) *url.URL {
	amzDate := issuedAt.UTC().Format("20060102T150405Z")
	shortDate := issuedAt.UTC().Format("20060102")
	scope := shortDate + "/" + p.region + "/s3/aws4_request"

	q := url.Values{}
	for k, vs := range query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("X-Amz-Algorithm", signAlgorithm)
	q.Set("X-Amz-Credential", p.accessKey+"/"+scope)
	q.Set("X-Amz-Date", amzDate)
	q.Set("X-Amz-Expires", strconv.FormatInt(int64(expiry/time.Second), 10))
	q.Set("X-Amz-SignedHeaders", "host")

	canonicalQuery := canonicalQueryString(q)
	canonicalRequest := strings.Join([]string{
		"GET",
		escapePath(path),
		canonicalQuery,
		"host:" + host + "\n",
		"host",
		"UNSIGNED-PAYLOAD",
	}, "\n")

	stringToSign := strings.Join([]string{
		signAlgorithm,
		amzDate,
		scope,
		hexSHA256([]byte(canonicalRequest)),
	}, "\n")

	key := []byte("AWS4" + p.secretKey)
	for _, part := range []string{shortDate, p.region, "s3", "aws4_request"} {
		key = hmacSHA256(key, part)
	}
	signature := hex.EncodeToString(hmacSHA256(key, stringToSign))

	return &url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     path,
		RawQuery: canonicalQuery + "&X-Amz-Signature=" + signature,
	}
}

// canonicalQueryString percent-encodes keys and values the SigV4 way (strict
// RFC 3986, space as %20 and not +, which rules out url.Values.Encode) and
// sorts by key.
func canonicalQueryString(q url.Values) string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range q[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(escape(k))
			b.WriteByte('=')
			b.WriteString(escape(v))
		}
	}
	return b.String()
}

// escapePath encodes each path segment, keeping the separators.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = escape(s)
	}
	return strings.Join(segments, "/")
}

func escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
			c == '-' || c == '_' || c == '.' || c == '~' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteString(strings.ToUpper(hex.EncodeToString([]byte{c})))
	}
	return b.String()
}

func hexSHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key []byte, data string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}
