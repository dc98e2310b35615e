package config

const (
	// Configuration file paths
	ConfigPathItemImagesDir = "configs/items/images/"
	ConfigPathItemCatalog   = "configs/items/catalog.json"
)
