package viewmode

import (
	"time"
)

// Built-in modes registered at process start. Values are tuned for
// legibility: size ratios stay within roughly one order of magnitude
// even though real radii span five

func init() {
	Register(Config{
		ID:             Realistic,
		Name:           "Realistic",
		RadiusExponent: 0.35,
		RadiusScale:    0.02,
		ObjectScaling: ObjectScaling{
			Star:     1.0,
			Planet:   0.9,
			Moon:     0.8,
			GasGiant: 0.95,
			Asteroid: 0.5,
			Default:  0.7,
		},
		OrbitRule:   OrbitProportional,
		SystemScale: 20.0,
		Camera: CameraConfig{
			RadiusMultiplier:      4.0,
			MinDistanceMultiplier: 2.0,
			MaxDistanceMultiplier: 12.0,
			AbsoluteMinDistance:   5.0,
			AbsoluteMaxDistance:   1200.0,
			Angles: ViewingAngles{
				DefaultElevationDeg:  30,
				BirdsEyeElevationDeg: 75,
			},
			Animation: Animation{
				FocusDuration:    900 * time.Millisecond,
				BirdsEyeDuration: 1200 * time.Millisecond,
				Easing:           "leap",
			},
		},
	})

	Register(Config{
		ID:             Navigational,
		Name:           "Navigational",
		RadiusExponent: 0.45,
		RadiusScale:    0.01,
		ObjectScaling: ObjectScaling{
			Star:     0.6,
			Planet:   1.0,
			Moon:     0.9,
			GasGiant: 0.9,
			Asteroid: 0.6,
			Default:  0.8,
		},
		OrbitRule:    OrbitEquidistant,
		SystemScale:  20.0,
		FixedSpacing: 15.0,
		Camera: CameraConfig{
			RadiusMultiplier:      3.5,
			MinDistanceMultiplier: 2.0,
			MaxDistanceMultiplier: 10.0,
			AbsoluteMinDistance:   5.0,
			AbsoluteMaxDistance:   900.0,
			Angles: ViewingAngles{
				DefaultElevationDeg:  35,
				BirdsEyeElevationDeg: 80,
			},
			Animation: Animation{
				FocusDuration:    700 * time.Millisecond,
				BirdsEyeDuration: 1000 * time.Millisecond,
				Easing:           "easeInOut",
			},
		},
	})

	Register(Config{
		ID:             Profile,
		Name:           "Profile",
		RadiusExponent: 0.45,
		RadiusScale:    0.01,
		ObjectScaling: ObjectScaling{
			Star:     0.6,
			Planet:   1.0,
			Moon:     0.9,
			GasGiant: 0.9,
			Asteroid: 0.6,
			Default:  0.8,
		},
		OrbitRule:    OrbitEquidistant,
		SystemScale:  20.0,
		FixedSpacing: 15.0,
		Linear:       true,
		Camera: CameraConfig{
			RadiusMultiplier:      3.0,
			MinDistanceMultiplier: 1.5,
			MaxDistanceMultiplier: 8.0,
			AbsoluteMinDistance:   5.0,
			AbsoluteMaxDistance:   800.0,
			Angles: ViewingAngles{
				DefaultElevationDeg:  22.5,
				BirdsEyeElevationDeg: 85,
			},
			Animation: Animation{
				FocusDuration:    600 * time.Millisecond,
				BirdsEyeDuration: 900 * time.Millisecond,
				Easing:           "easeOut",
			},
		},
	})
}
