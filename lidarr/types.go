package lidarr

import "time"

// SystemStatus describes the Lidarr instance.
type SystemStatus struct {
	AppName        string    `json:"appName"`
	InstanceName   string    `json:"instanceName"`
	Version        string    `json:"version"`
	BuildTime      time.Time `json:"buildTime"`
	StartTime      time.Time `json:"startTime"`
	OsName         string    `json:"osName"`
	Branch         string    `json:"branch"`
	Authentication string    `json:"authentication"`
}

// Artist represents an artist in the Lidarr library.
type Artist struct {
	ID                int64             `json:"id,omitempty"`
	ArtistName        string            `json:"artistName"`
	ForeignArtistID   string            `json:"foreignArtistId"`
	SortName          string            `json:"sortName,omitempty"`
	Disambiguation    string            `json:"disambiguation,omitempty"`
	Overview          string            `json:"overview,omitempty"`
	ArtistType        string            `json:"artistType,omitempty"`
	Status            string            `json:"status,omitempty"`
	Ended             bool              `json:"ended,omitempty"`
	Genres            []string          `json:"genres,omitempty"`
	Tags              []int             `json:"tags,omitempty"`
	Monitored         bool              `json:"monitored"`
	QualityProfileID  int64             `json:"qualityProfileId,omitempty"`
	MetadataProfileID int64             `json:"metadataProfileId,omitempty"`
	Path              string            `json:"path,omitempty"`
	RootFolderPath    string            `json:"rootFolderPath,omitempty"`
	Added             time.Time         `json:"added,omitempty"`
	Statistics        *ArtistStatistics `json:"statistics,omitempty"`
	AddOptions        *AddArtistOptions `json:"addOptions,omitempty"`
}

// ArtistStatistics holds aggregate library numbers for an artist.
type ArtistStatistics struct {
	AlbumCount      int     `json:"albumCount"`
	TrackFileCount  int     `json:"trackFileCount"`
	TrackCount      int     `json:"trackCount"`
	TotalTrackCount int     `json:"totalTrackCount"`
	SizeOnDisk      int64   `json:"sizeOnDisk"`
	PercentOfTracks float64 `json:"percentOfTracks"`
}

// AddArtistOptions controls Lidarr behaviour when an artist is added.
type AddArtistOptions struct {
	Monitor                string `json:"monitor,omitempty"`
	SearchForMissingAlbums bool   `json:"searchForMissingAlbums"`
}

// Album represents an album belonging to an artist.
type Album struct {
	ID             int64            `json:"id,omitempty"`
	Title          string           `json:"title"`
	ForeignAlbumID string           `json:"foreignAlbumId,omitempty"`
	ArtistID       int64            `json:"artistId,omitempty"`
	Artist         *Artist          `json:"artist,omitempty"`
	AlbumType      string           `json:"albumType,omitempty"`
	Monitored      bool             `json:"monitored"`
	ReleaseDate    time.Time        `json:"releaseDate,omitempty"`
	Genres         []string         `json:"genres,omitempty"`
	Statistics     *AlbumStatistics `json:"statistics,omitempty"`
}

// AlbumStatistics holds aggregate numbers for an album.
type AlbumStatistics struct {
	TrackFileCount  int     `json:"trackFileCount"`
	TrackCount      int     `json:"trackCount"`
	TotalTrackCount int     `json:"totalTrackCount"`
	SizeOnDisk      int64   `json:"sizeOnDisk"`
	PercentOfTracks float64 `json:"percentOfTracks"`
}

// Release is a downloadable release for an album.
type Release struct {
	ID          int64     `json:"id,omitempty"`
	GUID        string    `json:"guid,omitempty"`
	Title       string    `json:"title"`
	Indexer     string    `json:"indexer,omitempty"`
	Size        int64     `json:"size,omitempty"`
	Quality     any       `json:"quality,omitempty"`
	Rejected    bool      `json:"rejected,omitempty"`
	Rejections  []string  `json:"rejections,omitempty"`
	PublishDate time.Time `json:"publishDate,omitempty"`
}

// TrackFile represents a media file on disk.
type TrackFile struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artistId"`
	AlbumID   int64     `json:"albumId"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	DateAdded time.Time `json:"dateAdded"`
}

// Tag is a user-defined label attached to library items.
type Tag struct {
	ID    int    `json:"id,omitempty"`
	Label string `json:"label"`
}

// TagDetails lists the items carrying a tag.
type TagDetails struct {
	ID            int     `json:"id"`
	Label         string  `json:"label"`
	ArtistIDs     []int64 `json:"artistIds"`
	ImportListIDs []int64 `json:"importListIds"`
}

// QualityProfile is a named quality configuration.
type QualityProfile struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	UpgradeAllowed bool   `json:"upgradeAllowed"`
}

// MetadataProfile controls which album types are tracked.
type MetadataProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ImportList is a configured external list feeding the library.
type ImportList struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	EnableAutomaticAdd bool   `json:"enableAutomaticAdd"`
	ListType           string `json:"listType,omitempty"`
}

// RootFolder is a library storage location.
type RootFolder struct {
	ID         int64  `json:"id,omitempty"`
	Path       string `json:"path"`
	Accessible bool   `json:"accessible,omitempty"`
	FreeSpace  int64  `json:"freeSpace,omitempty"`
}

// DiskSpace describes utilisation of one mount point.
type DiskSpace struct {
	Path       string `json:"path"`
	Label      string `json:"label"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

// Backup is a system backup archive known to Lidarr.
type Backup struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Path string    `json:"path"`
	Type string    `json:"type"`
	Size int64     `json:"size"`
	Time time.Time `json:"time"`
}

// QueueItem is an entry in the download queue.
type QueueItem struct {
	ID                    int64           `json:"id"`
	ArtistID              int64           `json:"artistId"`
	AlbumID               int64           `json:"albumId"`
	Title                 string          `json:"title"`
	Status                string          `json:"status"`
	TrackedDownloadStatus string          `json:"trackedDownloadStatus"`
	TrackedDownloadState  string          `json:"trackedDownloadState"`
	StatusMessages        []StatusMessage `json:"statusMessages,omitempty"`
	Timeleft              string          `json:"timeleft,omitempty"`
	Size                  float64         `json:"size"`
	Sizeleft              float64         `json:"sizeleft"`
	DownloadClient        string          `json:"downloadClient,omitempty"`
}

// StatusMessage carries per-item queue diagnostics.
type StatusMessage struct {
	Title    string   `json:"title"`
	Messages []string `json:"messages"`
}

// QueuePage is one page of the download queue.
type QueuePage struct {
	Page         int         `json:"page"`
	PageSize     int         `json:"pageSize"`
	TotalRecords int         `json:"totalRecords"`
	Records      []QueueItem `json:"records"`
}

// HistoryItem is one history event.
type HistoryItem struct {
	ID          int64             `json:"id"`
	ArtistID    int64             `json:"artistId"`
	AlbumID     int64             `json:"albumId"`
	SourceTitle string            `json:"sourceTitle"`
	EventType   string            `json:"eventType"`
	Date        time.Time         `json:"date"`
	Data        map[string]string `json:"data,omitempty"`
}

// HistoryPage is one page of history events.
type HistoryPage struct {
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
	TotalRecords int           `json:"totalRecords"`
	Records      []HistoryItem `json:"records"`
}

// WantedPage is one page of wanted/missing albums.
type WantedPage struct {
	Page         int     `json:"page"`
	PageSize     int     `json:"pageSize"`
	TotalRecords int     `json:"totalRecords"`
	Records      []Album `json:"records"`
}

// BlocklistItem is a blocked release.
type BlocklistItem struct {
	ID          int64     `json:"id"`
	ArtistID    int64     `json:"artistId"`
	SourceTitle string    `json:"sourceTitle"`
	Date        time.Time `json:"date"`
	Protocol    string    `json:"protocol,omitempty"`
	Indexer     string    `json:"indexer,omitempty"`
}

// BlocklistPage is one page of the blocklist.
type BlocklistPage struct {
	Page         int             `json:"page"`
	PageSize     int             `json:"pageSize"`
	TotalRecords int             `json:"totalRecords"`
	Records      []BlocklistItem `json:"records"`
}

// ManualImportItem is a file candidate found during manual import.
type ManualImportItem struct {
	ID         int64   `json:"id"`
	Path       string  `json:"path"`
	Name       string  `json:"name"`
	Size       int64   `json:"size"`
	Artist     *Artist `json:"artist,omitempty"`
	Album      *Album  `json:"album,omitempty"`
	Rejections []struct {
		Reason string `json:"reason"`
	} `json:"rejections,omitempty"`
}

// CommandRequest triggers a server-side command.
type CommandRequest struct {
	Name      string             `json:"name"`
	AlbumIDs  []int64            `json:"albumIds,omitempty"`
	ArtistIDs []int64            `json:"artistIds,omitempty"`
	Files     []ManualImportItem `json:"files,omitempty"`
	Type      string             `json:"type,omitempty"`
	File      string             `json:"file,omitempty"`
}

// CommandResponse reports the state of a triggered command.
type CommandResponse struct {
	ID     int64     `json:"id"`
	Name   string    `json:"name"`
	Status string    `json:"status"`
	Queued time.Time `json:"queued,omitempty"`
}
