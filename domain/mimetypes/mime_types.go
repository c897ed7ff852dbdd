package mimetypes

import "mime"

type MIME string

const (
	Unknown                MIME = "unknown"
	ApplicationOctetStream MIME = "application/octet-stream"
	TextPlain              MIME = "text/plain"
	TextHTML               MIME = "text/html"
	TextCSS                MIME = "text/css"
	TextCSV                MIME = "text/csv"

	ApplicationPDF  MIME = "application/pdf"
	ApplicationJSON MIME = "application/json"
	ApplicationXML  MIME = "application/xml"
	ApplicationZIP  MIME = "application/zip"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"

	AudioMPEG MIME = "audio/mpeg"
	AudioWAV  MIME = "audio/wav"
)

var known = []MIME{
	ApplicationOctetStream,
	TextPlain, TextHTML, TextCSS, TextCSV,
	ApplicationPDF, ApplicationJSON, ApplicationXML, ApplicationZIP,
	ImagePNG, ImageJPEG, ImageGIF,
	AudioMPEG, AudioWAV,
}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// ToMIME maps a sniffed media type (parameters allowed) to one of the known types.
func ToMIME(detected string) MIME {
	for _, m := range known {
		if _, ok := Matches(detected, m); ok {
			return m
		}
	}
	return Unknown
}
