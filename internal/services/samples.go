package services

import "github.com/wantosing/backend/internal/models"

// Fixture data backing the dev quick-add and quick-switch flows. Copied
// into fresh records on use; never handed out by reference.

func strPtr(s string) *string { return &s }
func ms(d int64) *int64       { return &d }

// SampleProfile returns one of the fixture accounts by kind.
func SampleProfile(kind string) (models.Profile, bool) {
	switch kind {
	case models.ServiceSpotify:
		return models.Profile{
			IntegrationUserID: "21ye6p6wcuqhmx5334ipt34ra",
			Name:              "NaphatS",
			ImageURL:          strPtr("https://i.scdn.co/image/ab6775700000ee856f7342124488e7c6e7acf408"),
			ConnectedService:  models.ServiceSpotify,
		}, true
	case models.ServiceYouTube:
		return models.Profile{
			IntegrationUserID: "plux-gy-youtube",
			Name:              "Napat Saokomut (plux_gy)",
			ImageURL:          strPtr("https://lh3.googleusercontent.com/a/ACg8ocJkiZ4Xz8BOP1-IPDh2BUUIjGy05L_SKvaoqTmoF8jS7VBF-Qur=s96-c"),
			ConnectedService:  models.ServiceYouTube,
			Email:             strPtr("1@gmail.com"),
		}, true
	default:
		return models.Profile{}, false
	}
}

// SampleSongs is the quick-add catalog: each entry already resolved to
// Spotify, YouTube and Apple Music tracks.
var SampleSongs = []models.Song{
	{
		ID:                "3pKtpPB0NKnvMvQrPKOtlc",
		DefaultName:       "เธอไม่ชอบฝน (Rainfall)",
		DefaultArtistName: "Dome Jaruwat",
		DefaultThumbnail:  "https://i.scdn.co/image/ab67616d0000b273d117f6bcf6f3a8d9f46fb6df",
		DefaultDuration:   226285,
		ISRC:              strPtr("DGA082446721"),
		Tracks: []models.TrackEntry{
			{
				Source: models.ServiceSpotify,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "3pKtpPB0NKnvMvQrPKOtlc",
					Name:        "เธอไม่ชอบฝน (Rainfall)",
					ArtistNames: []string{"Dome Jaruwat"},
					AlbumName:   strPtr("เธอไม่ชอบฝน (Rainfall)"),
					ImageURL:    strPtr("https://i.scdn.co/image/ab67616d0000b273d117f6bcf6f3a8d9f46fb6df"),
					ISRC:        strPtr("DGA082446721"),
					Duration:    ms(226285),
					URL:         strPtr("https://open.spotify.com/track/3pKtpPB0NKnvMvQrPKOtlc"),
				},
			},
			{
				Source: models.ServiceYouTube,
				Data: models.TrackData{
					ExternalID:  "L54xTXy33VU",
					Name:        "Dome Jaruwat - เธอไม่ชอบฝน (Rainfall) | Official MV",
					ArtistNames: []string{"Dome Jaruwat Official"},
					ImageURL:    strPtr("https://i.ytimg.com/vi/L54xTXy33VU/hqdefault.jpg"),
					URL:         strPtr("https://youtu.be/L54xTXy33VU"),
				},
			},
			{
				Source: models.ServiceAppleMusic,
				Data: models.TrackData{
					ExternalID:  "1759561785",
					Name:        "เธอไม่ชอบฝน (Rainfall)",
					ArtistNames: []string{"Dome Jaruwat"},
					AlbumName:   strPtr("เธอไม่ชอบฝน (Rainfall) - Single"),
					ImageURL:    strPtr("https://is1-ssl.mzstatic.com/image/thumb/Music211/v4/9f/75/9f/9f759f8e-1b4d-69ec-abb2-01663e32893a/cover.jpg/3000x3000bb.jpg"),
					ISRC:        strPtr("DGA082446721"),
					Duration:    ms(226286),
					URL:         strPtr("https://music.apple.com/us/album/1759561778?i=1759561785"),
				},
			},
		},
	},
	{
		ID:                "25K1tGmiprhsC8LXgOrNjM",
		DefaultName:       "BF",
		DefaultArtistName: "PUN, URBOYTJ",
		DefaultThumbnail:  "https://i.scdn.co/image/ab67616d0000b273e3d515406e3098523b390a49",
		DefaultDuration:   216494,
		ISRC:              strPtr("THUM72400057"),
		Tracks: []models.TrackEntry{
			{
				Source: models.ServiceSpotify,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "25K1tGmiprhsC8LXgOrNjM",
					Name:        "BF",
					ArtistNames: []string{"PUN", "URBOYTJ"},
					AlbumName:   strPtr("BF"),
					ImageURL:    strPtr("https://i.scdn.co/image/ab67616d0000b273e3d515406e3098523b390a49"),
					ISRC:        strPtr("THUM72400057"),
					Duration:    ms(216494),
					URL:         strPtr("https://open.spotify.com/track/25K1tGmiprhsC8LXgOrNjM"),
				},
			},
			{
				Source: models.ServiceYouTube,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "LvIykODt6wg",
					Name:        "PUN - BF (feat. URBOYTJ)",
					ArtistNames: []string{"PUNVEVO"},
					ImageURL:    strPtr("https://i.ytimg.com/vi/LvIykODt6wg/hqdefault.jpg"),
					URL:         strPtr("https://youtu.be/LvIykODt6wg"),
				},
			},
			{
				Source: models.ServiceAppleMusic,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "1759294796",
					Name:        "BF (feat. URBOYTJ)",
					ArtistNames: []string{"PUN"},
					AlbumName:   strPtr("BF (feat. URBOYTJ) - Single"),
					ImageURL:    strPtr("https://is1-ssl.mzstatic.com/image/thumb/Music221/v4/16/6f/a7/166fa73f-9005-10a2-cc13-0b462fc5e446/24UMGIM78108.rgb.jpg/3000x3000bb.jpg"),
					ISRC:        strPtr("THUM72400057"),
					Duration:    ms(216495),
					URL:         strPtr("https://music.apple.com/us/album/bf-feat-urboytj/1759294791?i=1759294796"),
				},
			},
		},
	},
	{
		ID:                "30CRjTYAXaJf5YBsNQHIvG",
		DefaultName:       "ลามปาม (circus)",
		DefaultArtistName: "BOWKYLION, Jeff Satur",
		DefaultThumbnail:  "https://i.scdn.co/image/ab67616d0000b273977d3582882c2bd839bf7639",
		DefaultDuration:   296040,
		ISRC:              strPtr("THWTD2510900"),
		Tracks: []models.TrackEntry{
			{
				Source: models.ServiceSpotify,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "30CRjTYAXaJf5YBsNQHIvG",
					Name:        "ลามปาม (circus)",
					ArtistNames: []string{"BOWKYLION", "Jeff Satur"},
					AlbumName:   strPtr("ลามปาม (circus)"),
					ImageURL:    strPtr("https://i.scdn.co/image/ab67616d0000b273977d3582882c2bd839bf7639"),
					ISRC:        strPtr("THWTD2510900"),
					Duration:    ms(296040),
					URL:         strPtr("https://open.spotify.com/track/30CRjTYAXaJf5YBsNQHIvG"),
				},
			},
			{
				Source: models.ServiceYouTube,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "8zsY7HiM25o",
					Name:        "BOWKYLION Ft. Jeff Satur - ลามปาม (circus) [Official MV]",
					ArtistNames: []string{"Whattheduck"},
					ImageURL:    strPtr("https://i.ytimg.com/vi/8zsY7HiM25o/hqdefault.jpg"),
					URL:         strPtr("https://youtu.be/8zsY7HiM25o"),
				},
			},
			{
				Source: models.ServiceAppleMusic,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "1830402788",
					Name:        "ลามปาม (circus) [feat. Jeff Satur]",
					ArtistNames: []string{"BOWKYLION"},
					AlbumName:   strPtr("ลามปาม (circus) [feat. Jeff Satur] - Single"),
					ImageURL:    strPtr("https://is1-ssl.mzstatic.com/image/thumb/Music211/v4/01/e7/97/01e797eb-27cf-5a09-09b0-6721c1e7236c/25UM1IM03736.rgb.jpg/3000x3000bb.jpg"),
					ISRC:        strPtr("THWTD2510900"),
					Duration:    ms(296040),
					URL:         strPtr("https://music.apple.com/us/album/1830402560?i=1830402788"),
				},
			},
		},
	},
	{
		ID:                "0Vx23Np7HAjaQIttqOAUPR",
		DefaultName:       "ที่ผ่านมาขอบใจจริงๆ",
		DefaultArtistName: "LITTLE JOHN",
		DefaultThumbnail:  "https://i.scdn.co/image/ab67616d0000b273bc3afa6710dd166b457c5502",
		DefaultDuration:   338873,
		ISRC:              strPtr("FR59R2592181"),
		Tracks: []models.TrackEntry{
			{
				Source: models.ServiceSpotify,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "0Vx23Np7HAjaQIttqOAUPR",
					Name:        "ที่ผ่านมาขอบใจจริงๆ",
					ArtistNames: []string{"LITTLE JOHN"},
					AlbumName:   strPtr("ที่ผ่านมาขอบใจจริงๆ"),
					ImageURL:    strPtr("https://i.scdn.co/image/ab67616d0000b273bc3afa6710dd166b457c5502"),
					ISRC:        strPtr("FR59R2592181"),
					Duration:    ms(338873),
					URL:         strPtr("https://open.spotify.com/track/0Vx23Np7HAjaQIttqOAUPR"),
				},
			},
			{
				Source: models.ServiceAppleMusic,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "1803046221",
					Name:        "ที่ผ่านมาขอบใจจริงๆ",
					ArtistNames: []string{"LITTLE JOHN"},
					AlbumName:   strPtr("ที่ผ่านมาขอบใจจริงๆ - Single"),
					ImageURL:    strPtr("https://is1-ssl.mzstatic.com/image/thumb/Music211/v4/69/82/25/698225aa-ec19-c71e-ce32-e78a82cf17fa/cover.jpg/3000x3000bb.jpg"),
					ISRC:        strPtr("FR59R2592181"),
					Duration:    ms(338873),
					URL:         strPtr("https://music.apple.com/us/album/%E0%B8%97-%E0%B8%9C-%E0%B8%B2%E0%B8%99%E0%B8%A1%E0%B8%B2%E0%B8%82%E0%B8%AD%E0%B8%9A%E0%B9%83%E0%B8%88%E0%B8%88%E0%B8%A3-%E0%B8%87%E0%B9%86/1803046057?i=1803046221"),
				},
			},
			{
				Source: models.ServiceYouTube,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "3oo356UNY8o",
					Name:        "ที่ผ่านมาขอบใจจริงๆ - LITTLE JOHN |Official MV|",
					ArtistNames: []string{"9 Arkkhan"},
					ImageURL:    strPtr("https://i.ytimg.com/vi/3oo356UNY8o/hqdefault.jpg"),
					URL:         strPtr("https://youtu.be/3oo356UNY8o"),
				},
			},
		},
	},
	{
		ID:                "1iMQAktVLugiiZHnW9rdOl",
		DefaultName:       "งอแงแล้วหนึ่ง",
		DefaultArtistName: "ily",
		DefaultThumbnail:  "https://i.scdn.co/image/ab67616d0000b27356353fba809eecf87b9108bb",
		DefaultDuration:   196165,
		ISRC:              strPtr("TH2DY2500530"),
		Tracks: []models.TrackEntry{
			{
				Source: models.ServiceSpotify,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "1iMQAktVLugiiZHnW9rdOl",
					Name:        "งอแงแล้วหนึ่ง",
					ArtistNames: []string{"ily"},
					AlbumName:   strPtr("งอแงแล้วหนึ่ง"),
					ImageURL:    strPtr("https://i.scdn.co/image/ab67616d0000b27356353fba809eecf87b9108bb"),
					ISRC:        strPtr("TH2DY2500530"),
					Duration:    ms(196165),
					URL:         strPtr("https://open.spotify.com/track/1iMQAktVLugiiZHnW9rdOl"),
				},
			},
			{
				Source: models.ServiceYouTube,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "_Lj7fGpUDik",
					Name:        "ily -  งอแงแล้วหนึ่ง | Official MV",
					ArtistNames: []string{"XOXO ENTERTAINMENT"},
					ImageURL:    strPtr("https://i.ytimg.com/vi/_Lj7fGpUDik/hqdefault.jpg"),
					URL:         strPtr("https://youtu.be/_Lj7fGpUDik"),
				},
			},
			{
				Source: models.ServiceAppleMusic,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "1829648462",
					Name:        "งอแงแล้วหนึ่ง",
					ArtistNames: []string{"ily"},
					AlbumName:   strPtr("งอแงแล้วหนึ่ง - Single"),
					ImageURL:    strPtr("https://is1-ssl.mzstatic.com/image/thumb/Music221/v4/e1/51/85/e15185f7-8d1b-09cd-6de1-378f145d163d/25UM1IM01240.rgb.jpg/3000x3000bb.jpg"),
					ISRC:        strPtr("TH2DY2500530"),
					Duration:    ms(196166),
					URL:         strPtr("https://music.apple.com/us/album/%E0%B8%87%E0%B8%AD%E0%B9%81%E0%B8%87%E0%B9%81%E0%B8%A5-%E0%B8%A7%E0%B8%AB%E0%B8%99-%E0%B8%87/1829648460?i=1829648462"),
				},
			},
		},
	},
	{
		ID:                "4SatXpXNJu3T4AHlbNQ4Ei",
		DefaultName:       "คาถาหาเธอ (Horogals)",
		DefaultArtistName: "Sugar 'N Spice",
		DefaultThumbnail:  "https://i.scdn.co/image/ab67616d0000b27329d1a4adf1c9188c6355dca4",
		DefaultDuration:   180000,
		ISRC:              strPtr("FR10S2594995"),
		Tracks: []models.TrackEntry{
			{
				Source: models.ServiceSpotify,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "4SatXpXNJu3T4AHlbNQ4Ei",
					Name:        "คาถาหาเธอ (Horogals)",
					ArtistNames: []string{"Sugar 'N Spice"},
					AlbumName:   strPtr("คาถาหาเธอ (Horogals)"),
					ImageURL:    strPtr("https://i.scdn.co/image/ab67616d0000b27329d1a4adf1c9188c6355dca4"),
					ISRC:        strPtr("FR10S2594995"),
					Duration:    ms(180000),
					URL:         strPtr("https://open.spotify.com/track/4SatXpXNJu3T4AHlbNQ4Ei"),
				},
			},
			{
				Source: models.ServiceYouTube,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "tSI8K5ICCU4",
					Name:        "Sugar ‘N Spice (SNS) - คาถาหาเธอ (Horogals) | OFFICIAL M/V",
					ArtistNames: []string{"LIT Entertainment"},
					ImageURL:    strPtr("https://i.ytimg.com/vi/tSI8K5ICCU4/hqdefault.jpg"),
					URL:         strPtr("https://youtu.be/tSI8K5ICCU4"),
				},
			},
			{
				Source: models.ServiceAppleMusic,
				Type:   "track",
				Data: models.TrackData{
					ExternalID:  "1793482767",
					Name:        "คาถาหาเธอ (Horogals)",
					ArtistNames: []string{"Sugar 'N Spice"},
					AlbumName:   strPtr("คาถาหาเธอ (Horogals) - Single"),
					ImageURL:    strPtr("https://is1-ssl.mzstatic.com/image/thumb/Music211/v4/0e/c2/5c/0ec25c4d-4c18-259a-f728-87fcb9b6e816/cover.jpg/3000x3000bb.jpg"),
					ISRC:        strPtr("FR10S2594995"),
					Duration:    ms(180000),
					URL:         strPtr("https://music.apple.com/us/album/%E0%B8%84%E0%B8%B2%E0%B8%96%E0%B8%B2%E0%B8%AB%E0%B8%B2%E0%B9%80%E0%B8%98%E0%B8%AD-horogals/1793482765?i=1793482767"),
				},
			},
		},
	},
}
