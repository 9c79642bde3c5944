package chemjson

//Package chemjson implements serialization and unserialization of
//bondangles data types. Its planned use is the communication of bondangles
//with other, independent programs, which can be written in languages
//other than Go, as long as they can read and write JSON.
//A System is transmitted as a single JSON object, and the angles
//around each particle as one JSON object per particle, so results
//can be streamed, for instance, via UNIX pipes.
