package main

import (
	"context"
	"log"
	"os"

	"ai-shopassist-be/internal/entity"
	"ai-shopassist-be/internal/model"
	"ai-shopassist-be/internal/repository/implementation"
	"ai-shopassist-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

type seedProduct struct {
	Category       string
	Name           string
	Brand          string
	Price          string
	Image          string
	Specifications []string
}

var products = []seedProduct{
	{
		Category: "laptop",
		Name:     "MacBook M4 Pro",
		Brand:    "Apple",
		Price:    "2399",
		Image:    "macbook_m4_pro.jpg",
		Specifications: []string{
			"14.2-inch Liquid Retina XDR display",
			"Apple M4 Pro chip with 14-core CPU, 20-core GPU",
			"16GB unified memory",
			"512GB SSD storage",
			"ProMotion technology with 120Hz refresh rate",
			"Three Thunderbolt 4 ports",
			"Up to 18 hours battery life",
			"Backlit Magic Keyboard with Touch ID",
			"Wi-Fi 6E and Bluetooth 5.3",
		},
	},
	{
		Category: "laptop",
		Name:     "High-End Gaming Laptop",
		Brand:    "MSI",
		Price:    "2999",
		Image:    "msi_gaming_laptop.jpg",
		Specifications: []string{
			"17.3-inch QHD 240Hz display",
			"Intel Core i9-14900HX processor",
			"NVIDIA GeForce RTX 4090 16GB GDDR6",
			"32GB DDR5 RAM",
			"1TB NVMe PCIe Gen 4 SSD",
			"Per-key RGB SteelSeries keyboard",
			"Advanced cooling system with Cooler Boost Trinity+",
			"Windows 11 Pro",
			"Thunderbolt 4 support",
		},
	},
	{
		Category: "laptop",
		Name:     "LENOVO Yoga Slim 6 14\" Laptop",
		Brand:    "Lenovo",
		Price:    "899",
		Image:    "lenovo_yoga_slim_6.jpg",
		Specifications: []string{
			"14-inch 2.2K (2240 x 1400) IPS display",
			"Intel Core i5-13500H processor (12 cores, up to 4.7GHz)",
			"8GB LPDDR5X RAM",
			"512GB PCIe 4.0 NVMe SSD",
			"Intel Iris Xe Graphics",
			"Full-HD 1080p IR camera",
			"Dolby Atmos speaker system",
			"Backlit keyboard",
			"Up to 14 hours battery life",
		},
	},
	{
		Category: "laptop",
		Name:     "HP Pavilion SE 14\" Laptop",
		Brand:    "HP",
		Price:    "599",
		Image:    "hp_pavilion_se_14.jpg",
		Specifications: []string{
			"14-inch Full HD (1920 x 1080) IPS display",
			"Intel Core i3-N305 processor (8 cores, up to 3.8GHz)",
			"8GB DDR4 RAM (3200MHz)",
			"256GB PCIe NVMe M.2 SSD",
			"Intel UHD Graphics",
			"Windows 11 Home",
			"Wi-Fi 6 and Bluetooth 5.3",
			"720p HD camera",
			"Up to 10 hours battery life",
		},
	},
	{
		Category: "laptop",
		Name:     "SAMSUNG Galaxy Book2 Pro SE 15.6\" Laptop",
		Brand:    "Samsung",
		Price:    "1299",
		Image:    "samsung_galaxy_book2.jpg",
		Specifications: []string{
			"15.6-inch Full HD (1920 x 1080) AMOLED display",
			"Intel Core Ultra 7 155H processor",
			"16GB LPDDR5X RAM",
			"512GB PCIe Gen4 NVMe SSD",
			"Intel Arc Graphics",
			"1080p FHD webcam",
			"AKG quad speakers with Dolby Atmos",
			"Ultra-thin design: 11.7mm thickness",
			"Weight: 1.11kg (2.45 lbs)",
			"Up to 20 hours battery life",
		},
	},
	{
		Category: "laptop",
		Name:     "Apple MacBook Air 13.6\" (2024)",
		Brand:    "Apple",
		Price:    "1099",
		Image:    "macbook_air_2024.jpg",
		Specifications: []string{
			"13.6-inch Liquid Retina display (2560 x 1664)",
			"Apple M3 chip with 8-core CPU, 10-core GPU",
			"16GB unified memory",
			"256GB SSD storage",
			"1080p FaceTime HD camera",
			"Magic Keyboard with Touch ID",
			"Four-speaker sound system",
			"Up to 18 hours battery life",
			"Fanless design",
			"Weight: 1.24 kg (2.7 pounds)",
		},
	},
	{
		Category: "laptop",
		Name:     "Acer Aspire 5 Slim",
		Brand:    "Acer",
		Price:    "479",
		Image:    "acer_aspire_5.jpg",
		Specifications: []string{
			"15.6-inch Full HD (1920 x 1080) IPS display",
			"AMD Ryzen 3 3350U Quad-Core Processor",
			"4GB DDR4 RAM",
			"128GB PCIe NVMe SSD",
			"AMD Radeon Vega 6 Graphics",
			"HD Webcam (720p)",
			"Backlit keyboard",
			"Wi-Fi 6 and Bluetooth 5.0",
			"Up to 8 hours battery life",
		},
	},
	{
		Category: "laptop",
		Name:     "ASUS ROG Strix G16",
		Brand:    "ASUS",
		Price:    "1799",
		Image:    "asus_rog_strix_g16.jpg",
		Specifications: []string{
			"16-inch QHD 240Hz display (2560 x 1600)",
			"Intel Core i9-14900H processor",
			"16GB DDR5 RAM",
			"1TB SSD",
			"NVIDIA RTX 4070 8GB GDDR6",
			"ROG Intelligent Cooling thermal system",
			"Per-key RGB keyboard",
			"Windows 11 Pro",
			"Wi-Fi 6E and Bluetooth 5.3",
			"90Wh battery",
		},
	},
	{
		Category: "laptop",
		Name:     "Dell XPS 13 Plus",
		Brand:    "Dell",
		Price:    "1399",
		Image:    "dell_xps_13_plus.jpg",
		Specifications: []string{
			"13.4-inch 3.5K (3456 x 2160) OLED touch display",
			"Intel Core i7-1360P processor",
			"16GB LPDDR5 RAM",
			"512GB SSD",
			"Intel Iris Xe Graphics",
			"Zero-lattice keyboard with capacitive function row",
			"Haptic touch trackpad",
			"Dual Thunderbolt 4 ports",
			"Windows 11 Home",
			"52WHr battery",
		},
	},
	{
		Category: "laptop",
		Name:     "Microsoft Surface Laptop Studio 2",
		Brand:    "Microsoft",
		Price:    "2399",
		Image:    "microsoft_surface_studio_2.jpg",
		Specifications: []string{
			"14.4-inch PixelSense Flow touch display (2400 x 1600)",
			"Intel Core i7-13800H processor",
			"32GB RAM",
			"1TB SSD",
			"NVIDIA GeForce RTX 4060 GPU",
			"Versatile 3-in-1 design (laptop, stage, and studio modes)",
			"Surface Slim Pen 2 compatibility",
			"120Hz refresh rate with Dolby Vision",
			"Studio Mics and enhanced camera",
			"Windows 11 Pro",
		},
	},
	{
		Category: "phone",
		Name:     "iPhone 16 Pro Max",
		Brand:    "Apple",
		Price:    "1299",
		Image:    "iphone_16_pro_max.jpg",
		Specifications: []string{
			"6.9-inch Super Retina XDR display with ProMotion",
			"A18 Pro chip with 6-core CPU and 5-core GPU",
			"48MP main camera with sensor-shift OIS",
			"12MP ultra wide and 12MP telephoto cameras",
			"Up to 8K video recording with Dolby Vision",
			"Face ID facial recognition",
			"Up to 29 hours video playback",
			"5G connectivity",
			"iOS 18",
			"Ceramic Shield front",
		},
	},
	{
		Category: "phone",
		Name:     "Samsung Galaxy S24 Ultra",
		Brand:    "Samsung",
		Price:    "1199",
		Image:    "samsung_s24_ultra.jpg",
		Specifications: []string{
			"6.8-inch Dynamic AMOLED 2X display (3088 x 1440)",
			"120Hz adaptive refresh rate",
			"Snapdragon 8 Gen 3 processor",
			"200MP main camera",
			"12MP ultra-wide, 50MP telephoto with 5x optical zoom",
			"5000mAh battery with fast charging",
			"S Pen included",
			"Android 14 with One UI 6.1",
			"IP68 water and dust resistance",
			"8GB RAM with 256GB storage",
		},
	},
	{
		Category: "phone",
		Name:     "OnePlus 13R",
		Brand:    "OnePlus",
		Price:    "499",
		Image:    "oneplus_13r.jpg",
		Specifications: []string{
			"6.7-inch Fluid AMOLED display (2772 x 1240)",
			"120Hz refresh rate",
			"Snapdragon 8 Gen 3 processor",
			"50MP Sony IMX890 main camera",
			"8MP ultra-wide camera",
			"16MP front camera",
			"6000mAh battery",
			"100W SUPERVOOC fast charging",
			"OxygenOS 14 based on Android 14",
			"8GB RAM with 128GB storage",
		},
	},
	{
		Category: "phone",
		Name:     "Xiaomi 14T Pro",
		Brand:    "Xiaomi",
		Price:    "699",
		Image:    "xiaomi_14t_pro.jpg",
		Specifications: []string{
			"6.67-inch AMOLED display (2712 x 1220)",
			"144Hz refresh rate with Dolby Vision",
			"MediaTek Dimensity 9300+ processor",
			"50MP main camera with OIS",
			"12MP ultra-wide and 50MP telephoto cameras",
			"5000mAh battery",
			"120W HyperCharge",
			"MIUI 15 based on Android 14",
			"12GB RAM with 256GB storage",
			"Corning Gorilla Glass Victus 2",
		},
	},
	{
		Category: "phone",
		Name:     "Google Pixel 9 Pro",
		Brand:    "Google",
		Price:    "999",
		Image:    "google_pixel_9_pro.jpg",
		Specifications: []string{
			"6.3-inch OLED display (2992 x 1344)",
			"120Hz refresh rate",
			"Google Tensor G4 chip",
			"48MP main camera with Super Res Zoom",
			"12MP ultra-wide camera",
			"48MP telephoto camera with 5x optical zoom",
			"5000mAh battery",
			"Android 15 with 7 years of updates",
			"12GB RAM with 128GB storage",
			"Titan M2 security chip",
		},
	},
	{
		Category: "phone",
		Name:     "Nothing Phone 3a",
		Brand:    "Nothing",
		Price:    "449",
		Image:    "nothing_phone_3a.jpg",
		Specifications: []string{
			"6.7-inch AMOLED display (2400 x 1080)",
			"120Hz refresh rate",
			"Snapdragon 8s Gen 3 processor",
			"50MP main camera with OIS",
			"50MP ultra-wide camera",
			"Glyph Interface with customizable light patterns",
			"5000mAh battery",
			"45W fast charging",
			"Nothing OS 3.0 based on Android 14",
			"8GB RAM with 128GB storage",
		},
	},
	{
		Category: "phone",
		Name:     "Motorola Razr 50 Ultra",
		Brand:    "Motorola",
		Price:    "899",
		Image:    "motorola_razr_50.jpg",
		Specifications: []string{
			"6.9-inch foldable OLED main display (2640 x 1080)",
			"3.6-inch external OLED display",
			"Snapdragon 8s Gen 3 processor",
			"50MP main camera with OIS",
			"13MP ultra-wide camera",
			"32MP front camera",
			"4000mAh battery",
			"30W TurboPower charging",
			"Android 14",
			"8GB RAM with 256GB storage",
		},
	},
	{
		Category: "phone",
		Name:     "Blackview BV9900 Pro",
		Brand:    "Blackview",
		Price:    "349",
		Image:    "blackview_bv9900.jpg",
		Specifications: []string{
			"5.84-inch FHD+ display (2280 x 1080)",
			"MediaTek Helio P90 processor",
			"48MP Sony IMX582 main camera",
			"FLIR thermal imaging camera",
			"8GB RAM with 128GB storage",
			"IP68/IP69K/MIL-STD-810G rugged certification",
			"4380mAh battery",
			"Wireless charging support",
			"Android 10",
			"NFC support",
		},
	},
	{
		Category: "phone",
		Name:     "Sony Xperia 1 VI",
		Brand:    "Sony",
		Price:    "1099",
		Image:    "sony_xperia_1_vi.jpg",
		Specifications: []string{
			"6.5-inch 4K HDR OLED display (3840 x 1644)",
			"120Hz refresh rate",
			"Snapdragon 8 Gen 3 processor",
			"48MP main camera with ZEISS optics",
			"12MP ultra-wide and 12MP telephoto cameras",
			"3.5mm headphone jack",
			"5000mAh battery",
			"30W fast charging",
			"Android 14",
			"12GB RAM with 256GB storage",
		},
	},
	{
		Category: "phone",
		Name:     "Realme GT Neo 6",
		Brand:    "Realme",
		Price:    "599",
		Image:    "realme_gt_neo_6.jpg",
		Specifications: []string{
			"6.78-inch AMOLED display (2780 x 1264)",
			"144Hz refresh rate",
			"Snapdragon 8+ Gen 1 processor",
			"50MP Sony IMX890 main camera with OIS",
			"8MP ultra-wide camera",
			"16MP front camera",
			"5500mAh battery",
			"100W SuperDart Charge",
			"Realme UI 5.0 based on Android 14",
			"8GB RAM with 256GB storage",
		},
	},
	{
		Category: "phone",
		Name:     "Samsung Galaxy S25 Ultra",
		Brand:    "Samsung",
		Price:    "1149",
		Image:    "samsungs25ultra.jpg",
		Specifications: []string{
			"6.8-inch Dynamic AMOLED 2X display",
			"Snapdragon 8 Gen 3 for Galaxy processor",
			"200MP main camera with AI photography",
			"12GB/16GB RAM options",
			"256GB/512GB/1TB storage",
			"5000mAh battery with 45W fast charging",
			"S Pen included",
			"Galaxy AI features",
			"IP68 water resistance",
			"Titanium frame construction",
			"One UI 7.1 based on Android 15",
			"5G connectivity",
		},
	},
	{
		Category: "tv",
		Name:     "Samsung 65-inch QLED",
		Brand:    "Samsung",
		Price:    "1499",
		Image:    "samsung_65_qled.jpg",
		Specifications: []string{
			"65-inch 4K UHD display (3840 x 2160)",
			"Quantum Processor with AI upscaling",
			"Quantum HDR 32x",
			"Motion Rate 240",
			"Anti-reflection screen",
			"Object Tracking Sound Lite",
			"Gaming Hub with cloud gaming support",
			"Tizen smart TV platform",
			"Voice assistant compatibility",
			"4 HDMI ports, 2 USB ports",
		},
	},
	{
		Category: "tv",
		Name:     "LG OLED CX 55-inch",
		Brand:    "LG",
		Price:    "1799",
		Image:    "lg_oled_cx_55.jpg",
		Specifications: []string{
			"55-inch 4K OLED display (3840 x 2160)",
			"\u03b19 Gen3 AI Processor",
			"Dolby Vision IQ and Dolby Atmos",
			"120Hz refresh rate",
			"NVIDIA G-SYNC compatibility",
			"Filmmaker Mode",
			"webOS smart platform",
			"4 HDMI 2.1 ports",
			"ThinQ AI with voice assistants",
			"Infinite contrast ratio",
		},
	},
	{
		Category: "tv",
		Name:     "Sony Bravia 8 OLED",
		Brand:    "Sony",
		Price:    "2299",
		Image:    "sony_bravia_8.jpg",
		Specifications: []string{
			"65-inch 4K OLED display (3840 x 2160)",
			"Cognitive Processor XR",
			"XR OLED Contrast Pro",
			"Acoustic Surface Audio+",
			"BRAVIA CAM compatibility",
			"Google TV operating system",
			"4 HDMI 2.1 ports (2 with 4K/120Hz)",
			"ATSC 3.0 tuner",
			"Sony Perfect for PlayStation 5 features",
			"Dolby Vision and Dolby Atmos support",
		},
	},
	{
		Category: "tv",
		Name:     "TCL 6-Series QLED",
		Brand:    "TCL",
		Price:    "999",
		Image:    "tcl_6_series_qled.jpg",
		Specifications: []string{
			"65-inch 4K QLED display (3840 x 2160)",
			"Mini-LED backlight technology",
			"Up to 240 Contrast Control Zones",
			"Quantum Dot technology",
			"Dolby Vision, HDR10, HDR10+ and HLG",
			"120Hz refresh rate",
			"Variable Refresh Rate for gaming",
			"Google TV platform",
			"4 HDMI ports (2 with HDMI 2.1)",
			"Voice remote with Google Assistant",
		},
	},
	{
		Category: "tv",
		Name:     "Hisense U8K Mini-LED",
		Brand:    "Hisense",
		Price:    "1299",
		Image:    "hisense_u8k_mini_led.jpg",
		Specifications: []string{
			"65-inch 4K Mini-LED display (3840 x 2160)",
			"Up to 1500 nits peak brightness",
			"Full Array Local Dimming Pro",
			"144Hz refresh rate",
			"Quantum Dot Color",
			"Dolby Vision, HDR10+, HLG",
			"IMAX Enhanced certification",
			"HDMI 2.1 ports with ALLM and VRR",
			"Google TV with hands-free voice control",
			"Game Mode Pro with FreeSync Premium",
		},
	},
	{
		Category: "tv",
		Name:     "Vizio P-Series Quantum",
		Brand:    "Vizio",
		Price:    "899",
		Image:    "vizio_p_series.jpg",
		Specifications: []string{
			"65-inch 4K UHD display (3840 x 2160)",
			"Quantum Color technology",
			"Full Array LED with local dimming",
			"Up to 1200 nits brightness",
			"120Hz refresh rate",
			"HDR10, HDR10+, Dolby Vision, HLG",
			"ProGaming Engine with VRR",
			"SmartCast platform with Apple AirPlay 2",
			"Voice remote with voice assistant integration",
			"4 HDMI 2.1 ports",
		},
	},
	{
		Category: "tv",
		Name:     "Philips Ambilight OLED",
		Brand:    "Philips",
		Price:    "1699",
		Image:    "philips_ambilight_oled.jpg",
		Specifications: []string{
			"65-inch 4K OLED display (3840 x 2160)",
			"3-sided Ambilight technology",
			"P5 Perfect Picture Engine",
			"Dolby Atmos and Dolby Vision",
			"120Hz refresh rate",
			"Android TV smart platform",
			"HDMI 2.1 ports with VRR and ALLM",
			"DTS Play-Fi compatible",
			"Works with Alexa and Google Assistant",
			"4-sided anti-reflection coating",
		},
	},
	{
		Category: "tv",
		Name:     "Sharp Aquos XLED",
		Brand:    "Sharp",
		Price:    "1999",
		Image:    "sharp_aquos_xled.jpg",
		Specifications: []string{
			"70-inch 8K display (7680 x 4320)",
			"Quantum Dot technology",
			"HDR10, Dolby Vision, HLG",
			"AI picture optimization",
			"Harman Kardon audio system",
			"Android TV 11.0",
			"Built-in voice assistant",
			"4 HDMI ports, 3 USB ports",
			"Bluetooth audio",
			"Hands-free voice control",
		},
	},
	{
		Category: "tv",
		Name:     "Panasonic JZ2000 OLED",
		Brand:    "Panasonic",
		Price:    "2199",
		Image:    "panasonic_jz2000_oled.jpg",
		Specifications: []string{
			"65-inch 4K OLED Pro HDR display (3840 x 2160)",
			"Master HDR OLED Professional Edition panel",
			"360\u00b0 Soundscape Pro with upward-firing speakers",
			"HCX Pro AI Processor",
			"Dolby Vision IQ and Dolby Atmos",
			"Filmmaker Mode with Intelligent Sensing",
			"My Home Screen 6.0",
			"4 HDMI ports with HDMI 2.1 features",
			"Game Mode Extreme with low latency",
			"Voice control compatibility",
		},
	},
	{
		Category: "tv",
		Name:     "Toshiba Fire TV",
		Brand:    "Toshiba",
		Price:    "499",
		Image:    "toshiba_fire_tv.jpg",
		Specifications: []string{
			"55-inch 4K UHD display (3840 x 2160)",
			"Direct LED backlighting",
			"Dolby Vision HDR and HDR10",
			"DTS Virtual:X audio",
			"Fire TV built-in",
			"Alexa Voice Remote included",
			"60Hz refresh rate",
			"Auto Low Latency Mode for gaming",
			"4 HDMI ports, 2 USB ports",
			"Bluetooth audio streaming",
		},
	},
	{
		Category: "gaming",
		Name:     "Sony PlayStation 5 Console",
		Brand:    "Sony",
		Price:    "499.99",
		Image:    "ps5.jpg",
		Specifications: []string{
			"Custom AMD Zen 2 8-core CPU running at 3.5GHz",
			"Custom AMD RDNA 2 GPU with 10.28 TFLOPs and 36 compute units",
			"16GB GDDR6 RAM with 448GB/s memory bandwidth",
			"825GB custom NVMe SSD with 5.5GB/s raw throughput",
			"Support for 4K gaming at up to 120fps with ray tracing",
			"Backwards compatibility with PlayStation 4 games",
			"3D audio technology for immersive gaming experience",
			"DualSense wireless controller with haptic feedback and adaptive triggers",
			"Ultra HD Blu-ray disc support and digital game downloads",
			"USB-A and USB-C ports, HDMI 2.1 output, Ethernet and Wi-Fi 6 connectivity",
		},
	},
	{
		Category: "audio",
		Name:     "Gaming Headset Stereo Surround Sound Gaming Headphones with Breathing RGB Light",
		Brand:    "OZEINO",
		Price:    "29.99",
		Image:    "gamingheadphone.jpg",
		Specifications: []string{
			"50mm high-precision neodymium drivers for superior sound quality",
			"Breathing RGB LED lights with 7 color variations",
			"360-degree adjustable noise-canceling microphone",
			"3.5mm universal compatibility (PC, PS4, PS5, Xbox One, Nintendo Switch)",
			"Comfortable memory foam ear cushions for extended gaming sessions",
			"Lightweight design with adjustable headband",
			"In-line volume control and microphone mute button",
			"Durable braided cable with gold-plated 3.5mm connector",
			"Compatible with Windows, Mac, Linux operating systems",
			"Professional gaming-grade audio with virtual surround sound",
		},
	},}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(&model.Product{}); err != nil {
		log.Fatal("Error: Failed to migrate products table: ", err)
	}

	color.Cyan("Seeding product catalog...")

	entities := make([]*entity.Product, 0, len(products))
	perCategory := make(map[string]int)
	for _, p := range products {
		entities = append(entities, &entity.Product{
			Name:           p.Name,
			Category:       p.Category,
			Brand:          p.Brand,
			Price:          p.Price,
			Specifications: p.Specifications,
			Image:          p.Image,
		})
		perCategory[p.Category]++
	}

	ctx := context.Background()
	repo := implementation.NewCatalogRepository(db)
	if err := repo.UpsertMany(ctx, entities); err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}

	for category, count := range perCategory {
		color.Green("  %-8s %d products", category, count)
	}

	total, err := repo.CountAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to count products: ", err)
	}
	color.Cyan("Done. Catalog now holds %d products.", total)
}
